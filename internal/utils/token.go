package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/example/afume/internal/apperrors"
)

// TokenPayload carries the user's public profile inside issued tokens.
// Sensitive fields (password, phone) never enter a token.
type TokenPayload struct {
	UserIdx  uuid.UUID `json:"user_idx"`
	Nickname string    `json:"nickname"`
	Email    string    `json:"email"`
	Gender   string    `json:"gender"`
	Birth    int       `json:"birth"`
	Grade    int       `json:"grade"`
}

// TokenPair bundles a short-lived access token with a longer-lived refresh token.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type tokenClaims struct {
	TokenPayload
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens.
type TokenCodec struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenCodec constructs a TokenCodec signing with HS256.
func NewTokenCodec(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	return &TokenCodec{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Create signs a single access token for the payload.
func (tc *TokenCodec) Create(payload TokenPayload) (string, error) {
	return tc.sign(payload, tc.accessTTL)
}

// Publish issues an access/refresh token pair for the payload.
func (tc *TokenCodec) Publish(payload TokenPayload) (TokenPair, error) {
	token, err := tc.sign(payload, tc.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refreshToken, err := tc.sign(payload, tc.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Token: token, RefreshToken: refreshToken}, nil
}

// Verify decodes a token and returns its payload. An expired-but-well-signed
// token yields apperrors.ErrExpiredToken; any other failure yields
// apperrors.ErrInvalidToken, so callers can branch on refresh vs. re-login.
func (tc *TokenCodec) Verify(tokenString string) (TokenPayload, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return tc.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPayload{}, apperrors.ErrExpiredToken
		}
		return TokenPayload{}, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return TokenPayload{}, apperrors.ErrInvalidToken
	}
	return claims.TokenPayload, nil
}

// Reissue exchanges a valid refresh token for a freshly signed access token
// carrying the same payload.
func (tc *TokenCodec) Reissue(refreshToken string) (string, error) {
	payload, err := tc.Verify(refreshToken)
	if err != nil {
		return "", err
	}
	return tc.sign(payload, tc.accessTTL)
}

func (tc *TokenCodec) sign(payload TokenPayload, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		TokenPayload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    tc.issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}
