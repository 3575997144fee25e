package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// PerfumeDAO provides catalog access for perfumes and their detail rows.
type PerfumeDAO struct {
	db *gorm.DB
}

// NewPerfumeDAO constructs PerfumeDAO.
func NewPerfumeDAO(db *gorm.DB) *PerfumeDAO {
	return &PerfumeDAO{db: db}
}

// PerfumeListItem is the shape returned by catalog listings: the perfume row
// joined with its brand and series names plus the live like count.
type PerfumeListItem struct {
	models.Perfume
	BrandName  string `gorm:"column:brand_name" json:"brand_name"`
	SeriesName string `gorm:"column:series_name" json:"series_name"`
	LikeCnt    int64  `gorm:"column:like_cnt" json:"like_cnt"`
}

// PerfumeItem is the detail view: the listing columns plus the detail row.
type PerfumeItem struct {
	PerfumeListItem
	Story          string               `gorm:"column:story" json:"story"`
	AbundanceRate  models.AbundanceRate `gorm:"column:abundance_rate" json:"abundance_rate"`
	VolumeAndPrice string               `gorm:"column:volume_and_price" json:"volume_and_price"`
	ImageURL       string               `gorm:"column:image_url" json:"image_url"`
}

// Create inserts the perfume and its detail row as one transaction. Both
// succeed or neither does.
func (d *PerfumeDAO) Create(perfume *models.Perfume, detail *models.PerfumeDetail) error {
	return translate(d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(perfume).Error; err != nil {
			return err
		}
		detail.PerfumeID = perfume.ID
		return tx.Create(detail).Error
	}))
}

// Search runs the catalog query under the supplied filter.
func (d *PerfumeDAO) Search(filter PerfumeFilter) ([]PerfumeListItem, error) {
	var items []PerfumeListItem
	query := d.db.Model(&models.Perfume{}).
		Select("perfumes.*, brands.name AS brand_name, series.name AS series_name, " +
			likeCountSubquery + " AS like_cnt").
		Joins("INNER JOIN brands ON brands.id = perfumes.brand_id").
		Joins("INNER JOIN series ON series.id = perfumes.series_id")
	if err := filter.apply(query).Scan(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ReadByIdx loads one perfume with its detail, brand and series names and
// like count.
func (d *PerfumeDAO) ReadByIdx(perfumeIdx uuid.UUID) (PerfumeItem, error) {
	var item PerfumeItem
	err := d.db.Model(&models.Perfume{}).
		Select("perfumes.*, "+
			"perfume_details.story, perfume_details.abundance_rate, perfume_details.volume_and_price, perfume_details.image_url, "+
			"brands.name AS brand_name, series.name AS series_name, "+
			likeCountSubquery+" AS like_cnt").
		Joins("INNER JOIN perfume_details ON perfume_details.perfume_id = perfumes.id").
		Joins("INNER JOIN brands ON brands.id = perfumes.brand_id").
		Joins("INNER JOIN series ON series.id = perfumes.series_id").
		Where("perfumes.id = ?", perfumeIdx).
		Take(&item).Error
	if err != nil {
		return PerfumeItem{}, translate(err)
	}
	return item, nil
}

// Update rewrites the perfume and its detail row as one transaction.
func (d *PerfumeDAO) Update(perfume *models.Perfume, detail *models.PerfumeDetail) error {
	return translate(d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Perfume{}).Where("id = ?", perfume.ID).
			Updates(map[string]interface{}{
				"brand_id":            perfume.BrandID,
				"series_id":           perfume.SeriesID,
				"name":                perfume.Name,
				"english_name":        perfume.EnglishName,
				"image_thumbnail_url": perfume.ImageThumbnailURL,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotMatched
		}
		return tx.Model(&models.PerfumeDetail{}).Where("perfume_id = ?", perfume.ID).
			Updates(map[string]interface{}{
				"story":            detail.Story,
				"abundance_rate":   detail.AbundanceRate,
				"volume_and_price": detail.VolumeAndPrice,
				"image_url":        detail.ImageURL,
			}).Error
	}))
}

// Delete removes the perfume. The store cascades the delete to the detail
// row, reviews and like/wishlist associations.
func (d *PerfumeDAO) Delete(perfumeIdx uuid.UUID) error {
	result := d.db.Delete(&models.Perfume{}, "id = ?", perfumeIdx)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// ReadAllOfWishlist lists the perfumes on a user's wishlist, highest priority
// first.
func (d *PerfumeDAO) ReadAllOfWishlist(userIdx uuid.UUID) ([]PerfumeListItem, error) {
	var items []PerfumeListItem
	err := d.db.Model(&models.Perfume{}).
		Select("perfumes.*, brands.name AS brand_name, series.name AS series_name, "+
			likeCountSubquery+" AS like_cnt").
		Joins("INNER JOIN wishlists ON wishlists.perfume_id = perfumes.id").
		Joins("INNER JOIN brands ON brands.id = perfumes.brand_id").
		Joins("INNER JOIN series ON series.id = perfumes.series_id").
		Where("wishlists.user_id = ?", userIdx).
		Order("wishlists.priority DESC").
		Scan(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}
