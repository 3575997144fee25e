package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/middleware"
	"github.com/example/afume/internal/services"
)

// ReviewHandler manages sniff note endpoints.
type ReviewHandler struct {
	reviews *services.ReviewService
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Post attaches a sniff note to a perfume on behalf of the caller.
func (h *ReviewHandler) Post(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	perfumeIdx, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	review, err := h.reviews.Post(perfumeIdx, payload.UserIdx, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": review})
}

// Get returns one sniff note with its perfume and author.
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	review, err := h.reviews.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": review})
}

// ListOfPerfume lists a perfume's sniff notes. The sort query selects the
// ordering: like (default), score or recent.
func (h *ReviewHandler) ListOfPerfume(c *fiber.Ctx) error {
	perfumeIdx, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var items []dao.ReviewListItem
	switch c.Query("sort", "like") {
	case "score":
		items, err = h.reviews.GetOfPerfumeByScore(perfumeIdx)
	case "recent":
		items, err = h.reviews.GetOfPerfumeByRecent(perfumeIdx)
	default:
		items, err = h.reviews.GetOfPerfumeByLike(perfumeIdx)
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// ListMine lists the caller's sniff notes, newest first.
func (h *ReviewHandler) ListMine(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	reviews, err := h.reviews.GetByUser(payload.UserIdx)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": reviews})
}

// Update rewrites a sniff note.
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.reviews.Update(id, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete removes a sniff note.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.reviews.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Like endorses a review on behalf of the caller.
func (h *ReviewHandler) Like(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.reviews.Like(payload.UserIdx, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Unlike withdraws the caller's endorsement.
func (h *ReviewHandler) Unlike(c *fiber.Ctx) error {
	payload, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.reviews.Unlike(payload.UserIdx, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
