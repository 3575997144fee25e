package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// SeriesDAO provides access to scent series.
type SeriesDAO struct {
	db *gorm.DB
}

// NewSeriesDAO constructs SeriesDAO.
func NewSeriesDAO(db *gorm.DB) *SeriesDAO {
	return &SeriesDAO{db: db}
}

// Create inserts a series. A duplicate name yields ErrDuplicateEntry.
func (d *SeriesDAO) Create(series *models.Series) error {
	return translate(d.db.Create(series).Error)
}

// ReadByIdx loads one series by id.
func (d *SeriesDAO) ReadByIdx(seriesIdx uuid.UUID) (models.Series, error) {
	var series models.Series
	if err := d.db.First(&series, "id = ?", seriesIdx).Error; err != nil {
		return models.Series{}, translate(err)
	}
	return series, nil
}

// ReadByName loads one series by its unique name.
func (d *SeriesDAO) ReadByName(name string) (models.Series, error) {
	var series models.Series
	if err := d.db.First(&series, "name = ?", name).Error; err != nil {
		return models.Series{}, translate(err)
	}
	return series, nil
}

// ReadAll returns one page of series plus the total count.
func (d *SeriesDAO) ReadAll(limit, offset int, sort string) ([]models.Series, int64, error) {
	var total int64
	if err := d.db.Model(&models.Series{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var items []models.Series
	err := d.db.Limit(limit).Offset(offset).Order(parseSort(sort)).Find(&items).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return items, total, nil
}

// Update rewrites a series' descriptive fields.
func (d *SeriesDAO) Update(series *models.Series) error {
	result := d.db.Model(&models.Series{}).Where("id = ?", series.ID).
		Updates(map[string]interface{}{
			"name":         series.Name,
			"english_name": series.EnglishName,
			"description":  series.Description,
			"image_url":    series.ImageURL,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// Delete removes a series. Deleting one still referenced by perfumes or
// ingredients yields ErrNoReferencedRow, never a cascade.
func (d *SeriesDAO) Delete(seriesIdx uuid.UUID) error {
	result := d.db.Delete(&models.Series{}, "id = ?", seriesIdx)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}
