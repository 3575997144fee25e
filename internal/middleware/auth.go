package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/utils"
)

const userContextKey = "currentUser"

// AuthMiddleware validates bearer tokens and loads the authenticated user's
// token payload into the request context. Expired and invalid tokens produce
// distinct messages so clients know whether to refresh or to log in again.
func AuthMiddleware(tokens *utils.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		payload, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, apperrors.ErrExpiredToken) {
				return fiber.NewError(fiber.StatusUnauthorized, "expired token")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userContextKey, payload)
		return c.Next()
	}
}

// AdminMiddleware rejects callers below the elevated grade. It must run after
// AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, ok := GetCurrentUser(c)
		if !ok || payload.Grade < 1 {
			return fiber.NewError(fiber.StatusForbidden, "admin privilege required")
		}
		return c.Next()
	}
}

// GetCurrentUser extracts the authenticated token payload from context.
func GetCurrentUser(c *fiber.Ctx) (utils.TokenPayload, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return utils.TokenPayload{}, false
	}

	if payload, ok := value.(utils.TokenPayload); ok {
		return payload, true
	}

	return utils.TokenPayload{}, false
}
