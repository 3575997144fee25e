package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/afume/internal/models"
	"github.com/example/afume/internal/services"
	"github.com/example/afume/internal/utils"
)

// CatalogHandler manages the series and brand lookup resources.
type CatalogHandler struct {
	series *services.SeriesService
	brands *services.BrandService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(series *services.SeriesService, brands *services.BrandService) *CatalogHandler {
	return &CatalogHandler{series: series, brands: brands}
}

// ListSeries returns paginated series.
func (h *CatalogHandler) ListSeries(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	items, total, err := h.series.Search(pg.Limit, pg.Offset, c.Query("sort"))
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

// GetSeries returns a single series by ID.
func (h *CatalogHandler) GetSeries(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	series, err := h.series.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": series})
}

// CreateSeries persists a new series.
func (h *CatalogHandler) CreateSeries(c *fiber.Ctx) error {
	var payload models.Series
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing name")
	}

	series, err := h.series.Post(payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": series})
}

// UpdateSeries updates an existing series.
func (h *CatalogHandler) UpdateSeries(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.Series
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.series.Put(id, payload); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteSeries removes a series by ID.
func (h *CatalogHandler) DeleteSeries(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.series.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBrands returns paginated brands.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	items, total, err := h.brands.Search(pg.Limit, pg.Offset, c.Query("sort"))
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

// GetBrand returns a single brand by ID.
func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	brand, err := h.brands.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": brand})
}

// CreateBrand persists a new brand.
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var payload models.Brand
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing name")
	}

	brand, err := h.brands.Post(payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": brand})
}

// UpdateBrand updates an existing brand.
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var payload models.Brand
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.brands.Put(id, payload); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteBrand removes a brand by ID.
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.brands.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
