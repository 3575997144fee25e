package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/afume/internal/apperrors"
)

// ErrorHandler is the single place domain error kinds become HTTP statuses.
// Services and daos below never see transport concerns.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, apperrors.ErrNotMatched):
		status, message = fiber.StatusNotFound, "not found"
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		status, message = fiber.StatusConflict, "duplicate entry"
	case errors.Is(err, apperrors.ErrNoReferencedRow):
		status, message = fiber.StatusConflict, "referenced row constraint violated"
	case errors.Is(err, apperrors.ErrWrongPassword):
		status, message = fiber.StatusUnauthorized, "wrong password"
	case errors.Is(err, apperrors.ErrPasswordPolicy):
		status, message = fiber.StatusBadRequest, "password rejected by policy"
	case errors.Is(err, apperrors.ErrExpiredToken):
		status, message = fiber.StatusUnauthorized, "expired token"
	case errors.Is(err, apperrors.ErrInvalidToken):
		status, message = fiber.StatusUnauthorized, "invalid token"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
