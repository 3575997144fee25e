package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// ReviewDAO provides access to sniff notes and their endorsements.
type ReviewDAO struct {
	db *gorm.DB
}

// NewReviewDAO constructs ReviewDAO.
func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{db: db}
}

// ReviewListItem is a review joined with its author's nickname and the live
// endorsement count.
type ReviewListItem struct {
	models.Review
	Nickname  string `gorm:"column:nickname" json:"nickname"`
	LikeCount int64  `gorm:"column:like_count" json:"like_count"`
}

// Create inserts a review.
func (d *ReviewDAO) Create(review *models.Review) error {
	return translate(d.db.Create(review).Error)
}

// Read loads one review with its perfume and author.
func (d *ReviewDAO) Read(reviewIdx uuid.UUID) (models.Review, error) {
	var review models.Review
	err := d.db.Preload("Perfume").Preload("User").
		First(&review, "id = ?", reviewIdx).Error
	if err != nil {
		return models.Review{}, translate(err)
	}
	return review, nil
}

// ReadAllOfUser lists a user's reviews with their perfume, newest first.
func (d *ReviewDAO) ReadAllOfUser(userIdx uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := d.db.Preload("Perfume").
		Where("user_id = ?", userIdx).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

// perfumeReviews is the base join for per-perfume review listings: reviews
// with their author and a live endorsement count.
func (d *ReviewDAO) perfumeReviews(perfumeIdx uuid.UUID) *gorm.DB {
	return d.db.Model(&models.Review{}).
		Select("reviews.*, users.nickname AS nickname, count(like_reviews.id) AS like_count").
		Joins("INNER JOIN users ON users.id = reviews.user_id").
		Joins("LEFT JOIN like_reviews ON like_reviews.review_id = reviews.id").
		Where("reviews.perfume_id = ?", perfumeIdx).
		Group("reviews.id, users.id")
}

// ReadAllOfPerfumeByLike lists a perfume's reviews most endorsed first.
// Equal counts (the common zero-likes case included) tie-break on recency so
// the order stays deterministic per call.
func (d *ReviewDAO) ReadAllOfPerfumeByLike(perfumeIdx uuid.UUID) ([]ReviewListItem, error) {
	var items []ReviewListItem
	err := d.perfumeReviews(perfumeIdx).
		Order("like_count DESC, reviews.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ReadAllOfPerfumeByScore lists a perfume's reviews highest score first.
func (d *ReviewDAO) ReadAllOfPerfumeByScore(perfumeIdx uuid.UUID) ([]ReviewListItem, error) {
	var items []ReviewListItem
	err := d.perfumeReviews(perfumeIdx).
		Order("reviews.score DESC, reviews.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ReadAllOfPerfumeByRecent lists a perfume's reviews newest first.
func (d *ReviewDAO) ReadAllOfPerfumeByRecent(perfumeIdx uuid.UUID) ([]ReviewListItem, error) {
	var items []ReviewListItem
	err := d.perfumeReviews(perfumeIdx).
		Order("reviews.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// Update rewrites a review's attributes and content.
func (d *ReviewDAO) Update(review *models.Review) error {
	result := d.db.Model(&models.Review{}).Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"score":     review.Score,
			"longevity": review.Longevity,
			"sillage":   review.Sillage,
			"seasonal":  review.Seasonal,
			"gender":    review.Gender,
			"access":    review.Access,
			"content":   review.Content,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}

// Delete removes a review; its endorsements cascade at the store.
func (d *ReviewDAO) Delete(reviewIdx uuid.UUID) error {
	result := d.db.Delete(&models.Review{}, "id = ?", reviewIdx)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotMatched
	}
	return nil
}
