package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/afume/internal/services"
	"github.com/example/afume/internal/utils"
)

// IngredientHandler manages ingredient endpoints.
type IngredientHandler struct {
	ingredients *services.IngredientService
}

// NewIngredientHandler constructs IngredientHandler.
func NewIngredientHandler(ingredients *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// Create inserts an ingredient under the series named in the body.
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var req services.IngredientInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.SeriesName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	ingredient, err := h.ingredients.Post(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": ingredient})
}

// Get returns a single ingredient with its series.
func (h *IngredientHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	ingredient, err := h.ingredients.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": ingredient})
}

// List returns every ingredient in the requested order.
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	items, err := h.ingredients.GetAll(c.Query("sort"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Search returns paginated ingredients.
func (h *IngredientHandler) Search(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	items, total, err := h.ingredients.Search(pg.Limit, pg.Offset, c.Query("sort"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// Update rewrites an ingredient's descriptive fields.
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req services.IngredientInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.ingredients.Put(id, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete removes an ingredient.
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.ingredients.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
