package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// IngredientDAO provides access to scent ingredients.
type IngredientDAO struct {
	db *gorm.DB
}

// NewIngredientDAO constructs IngredientDAO.
func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{db: db}
}

// Create inserts an ingredient. A duplicate name yields ErrDuplicateEntry; a
// dangling series reference yields ErrNoReferencedRow.
func (d *IngredientDAO) Create(ingredient *models.Ingredient) error {
	return translate(d.db.Create(ingredient).Error)
}

// ReadByIdx loads one ingredient with its series.
func (d *IngredientDAO) ReadByIdx(ingredientIdx uuid.UUID) (models.Ingredient, error) {
	var ingredient models.Ingredient
	err := d.db.Preload("Series").First(&ingredient, "id = ?", ingredientIdx).Error
	if err != nil {
		return models.Ingredient{}, translate(err)
	}
	return ingredient, nil
}

// ReadAll returns every ingredient in the requested order.
func (d *IngredientDAO) ReadAll(sort string) ([]models.Ingredient, error) {
	var items []models.Ingredient
	if err := d.db.Order(parseSort(sort)).Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// Search returns one page of ingredients plus the total count.
func (d *IngredientDAO) Search(limit, offset int, sort string) ([]models.Ingredient, int64, error) {
	var total int64
	if err := d.db.Model(&models.Ingredient{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var items []models.Ingredient
	err := d.db.Limit(limit).Offset(offset).Order(parseSort(sort)).Find(&items).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return items, total, nil
}

// Update rewrites an ingredient's descriptive fields.
func (d *IngredientDAO) Update(ingredient *models.Ingredient) error {
	result := d.db.Model(&models.Ingredient{}).Where("id = ?", ingredient.ID).
		Updates(map[string]interface{}{
			"name":         ingredient.Name,
			"english_name": ingredient.EnglishName,
			"description":  ingredient.Description,
			"image_url":    ingredient.ImageURL,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// Delete removes an ingredient.
func (d *IngredientDAO) Delete(ingredientIdx uuid.UUID) error {
	result := d.db.Delete(&models.Ingredient{}, "id = ?", ingredientIdx)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}
