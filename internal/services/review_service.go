package services

import (
	"github.com/google/uuid"

	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/models"
)

// ReviewService orchestrates sniff note reads and writes. Every write also
// refreshes the perfume's attribute rollup so detail pages never aggregate on
// the fly.
type ReviewService struct {
	reviews *dao.ReviewDAO
	likes   *dao.LikeDAO
	rollups *dao.DefaultReviewDAO
}

// NewReviewService constructs ReviewService.
func NewReviewService(reviews *dao.ReviewDAO, likes *dao.LikeDAO, rollups *dao.DefaultReviewDAO) *ReviewService {
	return &ReviewService{reviews: reviews, likes: likes, rollups: rollups}
}

// ReviewInput carries the attributes of one sniff note.
type ReviewInput struct {
	Score     float64 `json:"score"`
	Longevity int     `json:"longevity"`
	Sillage   int     `json:"sillage"`
	Seasonal  int     `json:"seasonal"`
	Gender    int     `json:"gender"`
	Access    int     `json:"access"`
	Content   string  `json:"content"`
}

// Post attaches a new sniff note to a perfume.
func (s *ReviewService) Post(perfumeIdx, userIdx uuid.UUID, input ReviewInput) (models.Review, error) {
	review := models.Review{
		PerfumeID: perfumeIdx,
		UserID:    userIdx,
		Score:     input.Score,
		Longevity: input.Longevity,
		Sillage:   input.Sillage,
		Seasonal:  input.Seasonal,
		Gender:    input.Gender,
		Access:    input.Access,
		Content:   input.Content,
	}
	if err := s.reviews.Create(&review); err != nil {
		return models.Review{}, err
	}
	if err := s.rollups.Recompute(perfumeIdx); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// Get loads one sniff note with its perfume and author.
func (s *ReviewService) Get(reviewIdx uuid.UUID) (models.Review, error) {
	review, err := s.reviews.Read(reviewIdx)
	if err != nil {
		return models.Review{}, err
	}
	if review.User != nil {
		review.User.Password = ""
	}
	return review, nil
}

// GetByUser lists everything one user has written, newest first.
func (s *ReviewService) GetByUser(userIdx uuid.UUID) ([]models.Review, error) {
	return s.reviews.ReadAllOfUser(userIdx)
}

// GetOfPerfumeByLike lists a perfume's sniff notes most endorsed first.
func (s *ReviewService) GetOfPerfumeByLike(perfumeIdx uuid.UUID) ([]dao.ReviewListItem, error) {
	return s.reviews.ReadAllOfPerfumeByLike(perfumeIdx)
}

// GetOfPerfumeByScore lists a perfume's sniff notes highest score first.
func (s *ReviewService) GetOfPerfumeByScore(perfumeIdx uuid.UUID) ([]dao.ReviewListItem, error) {
	return s.reviews.ReadAllOfPerfumeByScore(perfumeIdx)
}

// GetOfPerfumeByRecent lists a perfume's sniff notes newest first.
func (s *ReviewService) GetOfPerfumeByRecent(perfumeIdx uuid.UUID) ([]dao.ReviewListItem, error) {
	return s.reviews.ReadAllOfPerfumeByRecent(perfumeIdx)
}

// Update rewrites a sniff note.
func (s *ReviewService) Update(reviewIdx uuid.UUID, input ReviewInput) error {
	review := models.Review{
		Score:     input.Score,
		Longevity: input.Longevity,
		Sillage:   input.Sillage,
		Seasonal:  input.Seasonal,
		Gender:    input.Gender,
		Access:    input.Access,
		Content:   input.Content,
	}
	review.ID = reviewIdx
	if err := s.reviews.Update(&review); err != nil {
		return err
	}
	stored, err := s.reviews.Read(reviewIdx)
	if err != nil {
		return err
	}
	return s.rollups.Recompute(stored.PerfumeID)
}

// Delete removes a sniff note and its endorsements.
func (s *ReviewService) Delete(reviewIdx uuid.UUID) error {
	review, err := s.reviews.Read(reviewIdx)
	if err != nil {
		return err
	}
	if err := s.reviews.Delete(reviewIdx); err != nil {
		return err
	}
	return s.rollups.Recompute(review.PerfumeID)
}

// Like endorses a review on behalf of a user.
func (s *ReviewService) Like(userIdx, reviewIdx uuid.UUID) error {
	return s.likes.LikeReview(userIdx, reviewIdx)
}

// Unlike withdraws an endorsement.
func (s *ReviewService) Unlike(userIdx, reviewIdx uuid.UUID) error {
	return s.likes.UnlikeReview(userIdx, reviewIdx)
}
