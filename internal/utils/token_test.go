package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/afume/internal/apperrors"
)

func newTestCodec(accessTTL, refreshTTL time.Duration) *TokenCodec {
	return NewTokenCodec("test-secret", "afume", accessTTL, refreshTTL)
}

func testPayload() TokenPayload {
	return TokenPayload{
		UserIdx:  uuid.New(),
		Nickname: "sniffer",
		Email:    "sniffer@example.com",
		Gender:   "F",
		Birth:    1995,
		Grade:    0,
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)
	payload := testPayload()

	pair, err := codec.Publish(payload)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Token)
	require.NotEmpty(t, pair.RefreshToken)

	decoded, err := codec.Verify(pair.Token)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	decoded, err = codec.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestTokenCodec_VerifyTampered(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)

	token, err := codec.Create(testPayload())
	require.NoError(t, err)

	_, err = codec.Verify(token + "a")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = codec.Verify("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenCodec_VerifyWrongSecret(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)
	other := NewTokenCodec("other-secret", "afume", time.Minute, time.Hour)

	token, err := codec.Create(testPayload())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenCodec_VerifyExpired(t *testing.T) {
	codec := newTestCodec(-time.Minute, time.Hour)

	token, err := codec.Create(testPayload())
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestTokenCodec_Reissue(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)
	payload := testPayload()

	pair, err := codec.Publish(payload)
	require.NoError(t, err)

	token, err := codec.Reissue(pair.RefreshToken)
	require.NoError(t, err)

	decoded, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestTokenCodec_ReissueExpiredRefresh(t *testing.T) {
	codec := newTestCodec(time.Minute, -time.Hour)

	pair, err := codec.Publish(testPayload())
	require.NoError(t, err)

	_, err = codec.Reissue(pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}
