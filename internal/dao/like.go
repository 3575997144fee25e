package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// LikeDAO records and removes endorsements on reviews and perfumes, and
// manages wishlist rows. Counts over these rows are always computed live.
type LikeDAO struct {
	db *gorm.DB
}

// NewLikeDAO constructs LikeDAO.
func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{db: db}
}

// LikeReview records a user's endorsement of a review. Liking twice yields
// ErrDuplicateEntry; a missing review yields ErrNoReferencedRow.
func (d *LikeDAO) LikeReview(userIdx, reviewIdx uuid.UUID) error {
	like := models.LikeReview{UserID: userIdx, ReviewID: reviewIdx}
	return translate(d.db.Create(&like).Error)
}

// UnlikeReview withdraws an endorsement.
func (d *LikeDAO) UnlikeReview(userIdx, reviewIdx uuid.UUID) error {
	result := d.db.Where("user_id = ? AND review_id = ?", userIdx, reviewIdx).
		Delete(&models.LikeReview{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// LikePerfume records a user's like on a perfume.
func (d *LikeDAO) LikePerfume(userIdx, perfumeIdx uuid.UUID) error {
	like := models.LikePerfume{UserID: userIdx, PerfumeID: perfumeIdx}
	return translate(d.db.Create(&like).Error)
}

// UnlikePerfume withdraws a perfume like.
func (d *LikeDAO) UnlikePerfume(userIdx, perfumeIdx uuid.UUID) error {
	result := d.db.Where("user_id = ? AND perfume_id = ?", userIdx, perfumeIdx).
		Delete(&models.LikePerfume{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// AddWishlist puts a perfume on the user's wishlist with the given priority.
func (d *LikeDAO) AddWishlist(userIdx, perfumeIdx uuid.UUID, priority int) error {
	row := models.Wishlist{UserID: userIdx, PerfumeID: perfumeIdx, Priority: priority}
	return translate(d.db.Create(&row).Error)
}

// RemoveWishlist takes a perfume off the user's wishlist.
func (d *LikeDAO) RemoveWishlist(userIdx, perfumeIdx uuid.UUID) error {
	result := d.db.Where("user_id = ? AND perfume_id = ?", userIdx, perfumeIdx).
		Delete(&models.Wishlist{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}
