package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/dao"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(dao.NewUserDAO(db), newTestTokens())
}

func signupInput(nickname string) SignupInput {
	return SignupInput{
		Nickname: nickname,
		Email:    nickname + "@example.com",
		Password: "orris-root-7",
		Gender:   "female",
		Birth:    1994,
	}
}

func TestUserServiceSignup(t *testing.T) {
	s := newUserService(t)

	session, err := s.Signup(signupInput("ambrette"))
	require.NoError(t, err)
	assert.Equal(t, "ambrette", session.User.Nickname)
	assert.Empty(t, session.User.Password, "hash must never leave the service")
	assert.NotEmpty(t, session.Tokens.Token)
	assert.NotEmpty(t, session.Tokens.RefreshToken)

	t.Run("issued token resolves back to the user", func(t *testing.T) {
		result := s.Auth(session.Tokens.Token)
		assert.True(t, result.IsAuth)
		assert.False(t, result.IsAdmin)
		assert.Equal(t, session.User.ID, result.User.ID)
	})

	t.Run("taken identity", func(t *testing.T) {
		_, err := s.Signup(signupInput("ambrette"))
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
	})
}

func TestUserServiceLogin(t *testing.T) {
	s := newUserService(t)
	_, err := s.Signup(signupInput("cashmeran"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		session, err := s.Login("cashmeran@example.com", "orris-root-7")
		require.NoError(t, err)
		assert.Equal(t, "cashmeran", session.User.Nickname)
		assert.Empty(t, session.User.Password)
		assert.False(t, session.User.AccessTime.IsZero())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login("cashmeran@example.com", "guess")
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Login("nobody@example.com", "orris-root-7")
		assert.ErrorIs(t, err, apperrors.ErrNotMatched)
	})
}

func TestUserServiceAuthDegradesQuietly(t *testing.T) {
	s := newUserService(t)

	assert.Equal(t, AuthResult{}, s.Auth("not-a-token"))
	assert.Equal(t, AuthResult{}, s.Auth(""))
}

func TestUserServiceChangePassword(t *testing.T) {
	s := newUserService(t)
	session, err := s.Signup(signupInput("galbanum"))
	require.NoError(t, err)
	userIdx := session.User.ID

	t.Run("wrong previous password", func(t *testing.T) {
		err := s.ChangePassword(userIdx, "guess", "new-secret-9")
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
	})

	t.Run("reusing the current password", func(t *testing.T) {
		err := s.ChangePassword(userIdx, "orris-root-7", "orris-root-7")
		assert.ErrorIs(t, err, apperrors.ErrPasswordPolicy)
	})

	t.Run("successful change", func(t *testing.T) {
		require.NoError(t, s.ChangePassword(userIdx, "orris-root-7", "new-secret-9"))

		_, err := s.Login("galbanum@example.com", "orris-root-7")
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
		_, err = s.Login("galbanum@example.com", "new-secret-9")
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := s.ChangePassword(uuid.New(), "x", "y")
		assert.ErrorIs(t, err, apperrors.ErrNotMatched)
	})
}

func TestUserServiceValidateIdentity(t *testing.T) {
	s := newUserService(t)
	_, err := s.Signup(signupInput("opoponax"))
	require.NoError(t, err)

	free, err := s.ValidateEmail("opoponax@example.com")
	require.NoError(t, err)
	assert.False(t, free)

	free, err = s.ValidateEmail("fresh@example.com")
	require.NoError(t, err)
	assert.True(t, free)

	free, err = s.ValidateNickname("opoponax")
	require.NoError(t, err)
	assert.False(t, free)

	free, err = s.ValidateNickname("styrax")
	require.NoError(t, err)
	assert.True(t, free)
}

func TestUserServiceReissue(t *testing.T) {
	s := newUserService(t)
	session, err := s.Signup(signupInput("benzoin"))
	require.NoError(t, err)

	token, err := s.Reissue(session.Tokens.RefreshToken)
	require.NoError(t, err)
	result := s.Auth(token)
	assert.True(t, result.IsAuth)
	assert.Equal(t, session.User.ID, result.User.ID)

	_, err = s.Reissue("garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
