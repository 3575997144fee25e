package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/middleware"
	"github.com/example/afume/internal/services"
)

// PerfumeHandler manages catalog endpoints.
type PerfumeHandler struct {
	perfumes *services.PerfumeService
}

// NewPerfumeHandler constructs PerfumeHandler.
func NewPerfumeHandler(perfumes *services.PerfumeService) *PerfumeHandler {
	return &PerfumeHandler{perfumes: perfumes}
}

// Search runs the filtered catalog query. Filter groups arrive as
// comma-separated query values, e.g. ?series=Woody,Floral&sort_by=like.
func (h *PerfumeHandler) Search(c *fiber.Ctx) error {
	filter := dao.PerfumeFilter{
		Series:   splitCSV(c.Query("series")),
		Brands:   splitCSV(c.Query("brands")),
		Keywords: splitCSV(c.Query("keywords")),
		SortBy:   c.Query("sort_by"),
	}

	items, err := h.perfumes.Search(filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Get loads one perfume's detail view with its review rollup.
func (h *PerfumeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	view, err := h.perfumes.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": view})
}

// Create inserts a perfume with its detail row.
func (h *PerfumeHandler) Create(c *fiber.Ctx) error {
	var req services.PerfumeInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing name")
	}

	perfume, err := h.perfumes.Create(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": perfume})
}

// Update rewrites a perfume with its detail row.
func (h *PerfumeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req services.PerfumeInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.perfumes.Update(id, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete removes a perfume and everything that hangs off it.
func (h *PerfumeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.perfumes.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Like records the caller's like on a perfume.
func (h *PerfumeHandler) Like(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.perfumes.Like(payload.UserIdx, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Unlike withdraws the caller's like on a perfume.
func (h *PerfumeHandler) Unlike(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.perfumes.Unlike(payload.UserIdx, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Wishlist lists the caller's wishlist, highest priority first.
func (h *PerfumeHandler) Wishlist(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.perfumes.Wishlist(payload.UserIdx)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

type wishlistRequest struct {
	Priority int `json:"priority"`
}

// AddToWishlist puts a perfume on the caller's wishlist.
func (h *PerfumeHandler) AddToWishlist(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req wishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.perfumes.AddToWishlist(payload.UserIdx, id, req.Priority); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// RemoveFromWishlist takes a perfume off the caller's wishlist.
func (h *PerfumeHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.perfumes.RemoveFromWishlist(payload.UserIdx, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
