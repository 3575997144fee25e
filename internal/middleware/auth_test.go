package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/afume/internal/utils"
)

func newAuthApp(t *testing.T, codec *utils.TokenCodec) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/me", AuthMiddleware(codec), func(c *fiber.Ctx) error {
		payload, ok := GetCurrentUser(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"nickname": payload.Nickname})
	})
	app.Get("/admin", AuthMiddleware(codec), AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	codec := utils.NewTokenCodec("middleware-test-secret", "afume", 30*time.Minute, time.Hour)
	app := newAuthApp(t, codec)

	member := utils.TokenPayload{UserIdx: uuid.New(), Nickname: "muguet"}
	admin := utils.TokenPayload{UserIdx: uuid.New(), Nickname: "root", Grade: 1}

	memberPair, err := codec.Publish(member)
	require.NoError(t, err)
	adminPair, err := codec.Publish(admin)
	require.NoError(t, err)

	get := func(path, authorization string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("valid bearer token passes", func(t *testing.T) {
		resp := get("/me", "Bearer "+memberPair.Token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing header", func(t *testing.T) {
		resp := get("/me", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		resp := get("/me", memberPair.Token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("tampered token", func(t *testing.T) {
		resp := get("/me", "Bearer "+memberPair.Token+"x")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		stale := utils.NewTokenCodec("middleware-test-secret", "afume", -time.Minute, time.Hour)
		pair, err := stale.Publish(member)
		require.NoError(t, err)

		resp := get("/me", "Bearer "+pair.Token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin gate rejects plain members", func(t *testing.T) {
		resp := get("/admin", "Bearer "+memberPair.Token)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin gate admits elevated grades", func(t *testing.T) {
		resp := get("/admin", "Bearer "+adminPair.Token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
