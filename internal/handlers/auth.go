package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/afume/internal/middleware"
	"github.com/example/afume/internal/models"
	"github.com/example/afume/internal/services"
)

// AuthHandler bundles account and session endpoints.
type AuthHandler struct {
	users *services.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup registers a new member and returns a session.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req services.SignupInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Nickname == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	result, err := h.users.Signup(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": result})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing member.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

type reissueRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Reissue exchanges a refresh token for a new access token.
func (h *AuthHandler) Reissue(c *fiber.Ctx) error {
	var req reissueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token, err := h.users.Reissue(req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"token": token}})
}

// GetProfile returns the caller's profile without sensitive fields.
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.users.GetByIdx(payload.UserIdx)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

type profileRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Birth    int    `json:"birth"`
}

// UpdateProfile rewrites the caller's profile.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user := models.User{
		Nickname: req.Nickname,
		Email:    req.Email,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Birth:    req.Birth,
		Grade:    payload.Grade,
	}
	user.ID = payload.UserIdx

	updated, err := h.users.Update(user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": updated})
}

type changePasswordRequest struct {
	PrevPassword string `json:"prev_password"`
	NewPassword  string `json:"new_password"`
}

// ChangePassword swaps the caller's password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.NewPassword == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing new password")
	}

	if err := h.users.ChangePassword(payload.UserIdx, req.PrevPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ValidateEmail reports whether an email is still free.
func (h *AuthHandler) ValidateEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing email")
	}

	available, err := h.users.ValidateEmail(email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"available": available}})
}

// ValidateNickname reports whether a nickname is still free.
func (h *AuthHandler) ValidateNickname(c *fiber.Ctx) error {
	nickname := c.Query("nickname")
	if nickname == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing nickname")
	}

	available, err := h.users.ValidateNickname(nickname)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"available": available}})
}

// DeleteAccount removes the caller's account.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.users.Delete(payload.UserIdx); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
