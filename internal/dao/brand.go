package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// BrandDAO provides access to perfume brands.
type BrandDAO struct {
	db *gorm.DB
}

// NewBrandDAO constructs BrandDAO.
func NewBrandDAO(db *gorm.DB) *BrandDAO {
	return &BrandDAO{db: db}
}

// Create inserts a brand. A duplicate name yields ErrDuplicateEntry.
func (d *BrandDAO) Create(brand *models.Brand) error {
	return translate(d.db.Create(brand).Error)
}

// ReadByIdx loads one brand by id.
func (d *BrandDAO) ReadByIdx(brandIdx uuid.UUID) (models.Brand, error) {
	var brand models.Brand
	if err := d.db.First(&brand, "id = ?", brandIdx).Error; err != nil {
		return models.Brand{}, translate(err)
	}
	return brand, nil
}

// ReadByName loads one brand by its unique name.
func (d *BrandDAO) ReadByName(name string) (models.Brand, error) {
	var brand models.Brand
	if err := d.db.First(&brand, "name = ?", name).Error; err != nil {
		return models.Brand{}, translate(err)
	}
	return brand, nil
}

// ReadAll returns one page of brands plus the total count.
func (d *BrandDAO) ReadAll(limit, offset int, sort string) ([]models.Brand, int64, error) {
	var total int64
	if err := d.db.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var items []models.Brand
	err := d.db.Limit(limit).Offset(offset).Order(parseSort(sort)).Find(&items).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return items, total, nil
}

// Update rewrites a brand's descriptive fields.
func (d *BrandDAO) Update(brand *models.Brand) error {
	result := d.db.Model(&models.Brand{}).Where("id = ?", brand.ID).
		Updates(map[string]interface{}{
			"name":         brand.Name,
			"english_name": brand.EnglishName,
			"description":  brand.Description,
			"image_url":    brand.ImageURL,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// Delete removes a brand. Deleting one still referenced by perfumes yields
// ErrNoReferencedRow.
func (d *BrandDAO) Delete(brandIdx uuid.UUID) error {
	result := d.db.Delete(&models.Brand{}, "id = ?", brandIdx)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}
