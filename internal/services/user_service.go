package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/models"
	"github.com/example/afume/internal/utils"
)

// UserService orchestrates account management and session issuance.
type UserService struct {
	users  *dao.UserDAO
	tokens *utils.TokenCodec
}

// NewUserService constructs UserService.
func NewUserService(users *dao.UserDAO, tokens *utils.TokenCodec) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// SignupInput carries the fields a new member registers with.
type SignupInput struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Birth    int    `json:"birth"`
}

// SessionResult is a user's public profile plus a fresh token pair.
type SessionResult struct {
	User   models.User     `json:"user"`
	Tokens utils.TokenPair `json:"tokens"`
}

// Signup registers a user and issues a session. A taken email or nickname
// surfaces as ErrDuplicateEntry.
func (s *UserService) Signup(input SignupInput) (SessionResult, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return SessionResult{}, err
	}

	user := models.User{
		Nickname: input.Nickname,
		Email:    input.Email,
		Password: hash,
		Gender:   input.Gender,
		Phone:    input.Phone,
		Birth:    input.Birth,
	}
	if err := s.users.Create(&user); err != nil {
		return SessionResult{}, err
	}

	return s.openSession(user)
}

// Login verifies credentials and issues a session. An unknown email yields
// ErrNotMatched; a failed password check yields ErrWrongPassword.
func (s *UserService) Login(email, password string) (SessionResult, error) {
	user, err := s.users.ReadByEmail(email)
	if err != nil {
		return SessionResult{}, err
	}
	if !utils.CheckPassword(user.Password, password) {
		return SessionResult{}, apperrors.ErrWrongPassword
	}

	now := time.Now()
	if err := s.users.UpdateAccessTime(user.ID, now); err != nil {
		return SessionResult{}, err
	}
	user.AccessTime = now
	return s.openSession(user)
}

// Reissue exchanges a valid refresh token for a new access token.
func (s *UserService) Reissue(refreshToken string) (string, error) {
	return s.tokens.Reissue(refreshToken)
}

// AuthResult describes what a presented token entitles its bearer to.
type AuthResult struct {
	IsAuth  bool        `json:"is_auth"`
	IsAdmin bool        `json:"is_admin"`
	User    models.User `json:"user,omitempty"`
}

// Auth resolves a bearer token into the current user. Verification or lookup
// failure degrades to an unauthenticated result rather than an error.
func (s *UserService) Auth(token string) AuthResult {
	payload, err := s.tokens.Verify(token)
	if err != nil {
		return AuthResult{}
	}
	user, err := s.users.ReadByIdx(payload.UserIdx)
	if err != nil {
		return AuthResult{}
	}
	user.Password = ""
	return AuthResult{IsAuth: true, IsAdmin: user.IsAdmin(), User: user}
}

// GetByIdx returns a user with sensitive fields stripped.
func (s *UserService) GetByIdx(userIdx uuid.UUID) (models.User, error) {
	user, err := s.users.ReadByIdx(userIdx)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// Update rewrites a user's profile and returns the stored result.
func (s *UserService) Update(user models.User) (models.User, error) {
	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}
	return s.GetByIdx(user.ID)
}

// ChangePassword swaps the stored hash after verifying the previous password.
// Reusing the current password yields ErrPasswordPolicy.
func (s *UserService) ChangePassword(userIdx uuid.UUID, prevPassword, newPassword string) error {
	user, err := s.users.ReadByIdx(userIdx)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(user.Password, prevPassword) {
		return apperrors.ErrWrongPassword
	}
	if utils.CheckPassword(user.Password, newPassword) {
		return apperrors.ErrPasswordPolicy
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userIdx, hash)
}

// ValidateEmail reports whether an email is still free.
func (s *UserService) ValidateEmail(email string) (bool, error) {
	_, err := s.users.ReadByEmail(email)
	if err == apperrors.ErrNotMatched {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// ValidateNickname reports whether a nickname is still free.
func (s *UserService) ValidateNickname(nickname string) (bool, error) {
	_, err := s.users.ReadByNickname(nickname)
	if err == apperrors.ErrNotMatched {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// Delete removes the account.
func (s *UserService) Delete(userIdx uuid.UUID) error {
	return s.users.Delete(userIdx)
}

func (s *UserService) openSession(user models.User) (SessionResult, error) {
	pair, err := s.tokens.Publish(utils.TokenPayload{
		UserIdx:  user.ID,
		Nickname: user.Nickname,
		Email:    user.Email,
		Gender:   user.Gender,
		Birth:    user.Birth,
		Grade:    user.Grade,
	})
	if err != nil {
		return SessionResult{}, err
	}
	user.Password = ""
	return SessionResult{User: user, Tokens: pair}, nil
}
