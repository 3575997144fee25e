package services

import (
	"github.com/google/uuid"

	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/models"
)

// SeriesService is a thin orchestration layer over the series dao.
type SeriesService struct {
	series *dao.SeriesDAO
}

// NewSeriesService constructs SeriesService.
func NewSeriesService(series *dao.SeriesDAO) *SeriesService {
	return &SeriesService{series: series}
}

// Post inserts a series.
func (s *SeriesService) Post(series models.Series) (models.Series, error) {
	if err := s.series.Create(&series); err != nil {
		return models.Series{}, err
	}
	return series, nil
}

// Get loads one series by id.
func (s *SeriesService) Get(seriesIdx uuid.UUID) (models.Series, error) {
	return s.series.ReadByIdx(seriesIdx)
}

// GetByName loads one series by name.
func (s *SeriesService) GetByName(name string) (models.Series, error) {
	return s.series.ReadByName(name)
}

// Search returns one page of series plus the total count.
func (s *SeriesService) Search(limit, offset int, sort string) ([]models.Series, int64, error) {
	return s.series.ReadAll(limit, offset, sort)
}

// Put rewrites a series.
func (s *SeriesService) Put(seriesIdx uuid.UUID, series models.Series) error {
	series.ID = seriesIdx
	return s.series.Update(&series)
}

// Delete removes a series; one still referenced yields ErrNoReferencedRow.
func (s *SeriesService) Delete(seriesIdx uuid.UUID) error {
	return s.series.Delete(seriesIdx)
}

// BrandService is a thin orchestration layer over the brand dao.
type BrandService struct {
	brands *dao.BrandDAO
}

// NewBrandService constructs BrandService.
func NewBrandService(brands *dao.BrandDAO) *BrandService {
	return &BrandService{brands: brands}
}

// Post inserts a brand.
func (s *BrandService) Post(brand models.Brand) (models.Brand, error) {
	if err := s.brands.Create(&brand); err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

// Get loads one brand by id.
func (s *BrandService) Get(brandIdx uuid.UUID) (models.Brand, error) {
	return s.brands.ReadByIdx(brandIdx)
}

// Search returns one page of brands plus the total count.
func (s *BrandService) Search(limit, offset int, sort string) ([]models.Brand, int64, error) {
	return s.brands.ReadAll(limit, offset, sort)
}

// Put rewrites a brand.
func (s *BrandService) Put(brandIdx uuid.UUID, brand models.Brand) error {
	brand.ID = brandIdx
	return s.brands.Update(&brand)
}

// Delete removes a brand; one still referenced yields ErrNoReferencedRow.
func (s *BrandService) Delete(brandIdx uuid.UUID) error {
	return s.brands.Delete(brandIdx)
}
