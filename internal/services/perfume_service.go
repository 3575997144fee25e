package services

import (
	"github.com/google/uuid"

	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/models"
)

// PerfumeService orchestrates catalog reads and writes.
type PerfumeService struct {
	perfumes       *dao.PerfumeDAO
	defaultReviews *dao.DefaultReviewDAO
	likes          *dao.LikeDAO
}

// NewPerfumeService constructs PerfumeService.
func NewPerfumeService(perfumes *dao.PerfumeDAO, defaultReviews *dao.DefaultReviewDAO, likes *dao.LikeDAO) *PerfumeService {
	return &PerfumeService{perfumes: perfumes, defaultReviews: defaultReviews, likes: likes}
}

// PerfumeInput carries every field of a perfume and its detail row.
type PerfumeInput struct {
	BrandID           uuid.UUID            `json:"brand_id"`
	SeriesID          uuid.UUID            `json:"series_id"`
	Name              string               `json:"name"`
	EnglishName       string               `json:"english_name"`
	ImageThumbnailURL string               `json:"image_thumbnail_url"`
	Story             string               `json:"story"`
	AbundanceRate     models.AbundanceRate `json:"abundance_rate"`
	VolumeAndPrice    string               `json:"volume_and_price"`
	ImageURL          string               `json:"image_url"`
}

// PerfumeView is the detail response: the joined perfume plus its review
// rollup.
type PerfumeView struct {
	dao.PerfumeItem
	DefaultReview dao.DefaultReviewRollup `json:"default_review"`
}

// Search runs the catalog query under the supplied filter.
func (s *PerfumeService) Search(filter dao.PerfumeFilter) ([]dao.PerfumeListItem, error) {
	return s.perfumes.Search(filter)
}

// Get loads one perfume's detail view together with its default review
// rollup. A perfume without reviews still gets a zero-filled rollup.
func (s *PerfumeService) Get(perfumeIdx uuid.UUID) (PerfumeView, error) {
	item, err := s.perfumes.ReadByIdx(perfumeIdx)
	if err != nil {
		return PerfumeView{}, err
	}
	rollup, err := s.defaultReviews.Read(perfumeIdx)
	if err != nil {
		return PerfumeView{}, err
	}
	return PerfumeView{PerfumeItem: item, DefaultReview: rollup}, nil
}

// Create inserts a perfume with its detail row in one unit of work.
func (s *PerfumeService) Create(input PerfumeInput) (models.Perfume, error) {
	perfume := models.Perfume{
		BrandID:           input.BrandID,
		SeriesID:          input.SeriesID,
		Name:              input.Name,
		EnglishName:       input.EnglishName,
		ImageThumbnailURL: input.ImageThumbnailURL,
	}
	detail := models.PerfumeDetail{
		Story:          input.Story,
		AbundanceRate:  input.AbundanceRate,
		VolumeAndPrice: input.VolumeAndPrice,
		ImageURL:       input.ImageURL,
	}
	if err := s.perfumes.Create(&perfume, &detail); err != nil {
		return models.Perfume{}, err
	}
	perfume.Detail = &detail
	return perfume, nil
}

// Update rewrites a perfume with its detail row in one unit of work.
func (s *PerfumeService) Update(perfumeIdx uuid.UUID, input PerfumeInput) error {
	perfume := models.Perfume{
		BrandID:           input.BrandID,
		SeriesID:          input.SeriesID,
		Name:              input.Name,
		EnglishName:       input.EnglishName,
		ImageThumbnailURL: input.ImageThumbnailURL,
	}
	perfume.ID = perfumeIdx
	detail := models.PerfumeDetail{
		PerfumeID:      perfumeIdx,
		Story:          input.Story,
		AbundanceRate:  input.AbundanceRate,
		VolumeAndPrice: input.VolumeAndPrice,
		ImageURL:       input.ImageURL,
	}
	return s.perfumes.Update(&perfume, &detail)
}

// Delete removes a perfume; the store cascades to detail, reviews and
// like/wishlist rows.
func (s *PerfumeService) Delete(perfumeIdx uuid.UUID) error {
	return s.perfumes.Delete(perfumeIdx)
}

// Wishlist lists the perfumes a user wants, highest priority first.
func (s *PerfumeService) Wishlist(userIdx uuid.UUID) ([]dao.PerfumeListItem, error) {
	return s.perfumes.ReadAllOfWishlist(userIdx)
}

// AddToWishlist puts a perfume on the user's wishlist.
func (s *PerfumeService) AddToWishlist(userIdx, perfumeIdx uuid.UUID, priority int) error {
	return s.likes.AddWishlist(userIdx, perfumeIdx, priority)
}

// RemoveFromWishlist takes a perfume off the user's wishlist.
func (s *PerfumeService) RemoveFromWishlist(userIdx, perfumeIdx uuid.UUID) error {
	return s.likes.RemoveWishlist(userIdx, perfumeIdx)
}

// Like records the user's like on a perfume.
func (s *PerfumeService) Like(userIdx, perfumeIdx uuid.UUID) error {
	return s.likes.LikePerfume(userIdx, perfumeIdx)
}

// Unlike withdraws the user's like on a perfume.
func (s *PerfumeService) Unlike(userIdx, perfumeIdx uuid.UUID) error {
	return s.likes.UnlikePerfume(userIdx, perfumeIdx)
}
