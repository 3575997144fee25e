package services

import (
	"github.com/google/uuid"

	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/models"
)

// IngredientService orchestrates ingredient management. Creation takes a
// series name, resolved to its id before the insert.
type IngredientService struct {
	ingredients *dao.IngredientDAO
	series      *dao.SeriesDAO
}

// NewIngredientService constructs IngredientService.
func NewIngredientService(ingredients *dao.IngredientDAO, series *dao.SeriesDAO) *IngredientService {
	return &IngredientService{ingredients: ingredients, series: series}
}

// IngredientInput carries the fields for creating or updating an ingredient.
// SeriesName names the owning series; an unknown name yields ErrNotMatched.
type IngredientInput struct {
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SeriesName  string `json:"series_name"`
}

// Post resolves the series name and inserts the ingredient.
func (s *IngredientService) Post(input IngredientInput) (models.Ingredient, error) {
	series, err := s.series.ReadByName(input.SeriesName)
	if err != nil {
		return models.Ingredient{}, err
	}

	ingredient := models.Ingredient{
		Name:        input.Name,
		EnglishName: input.EnglishName,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		SeriesID:    series.ID,
	}
	if err := s.ingredients.Create(&ingredient); err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

// Get loads one ingredient with its series.
func (s *IngredientService) Get(ingredientIdx uuid.UUID) (models.Ingredient, error) {
	return s.ingredients.ReadByIdx(ingredientIdx)
}

// GetAll returns every ingredient in the requested order.
func (s *IngredientService) GetAll(sort string) ([]models.Ingredient, error) {
	return s.ingredients.ReadAll(sort)
}

// Search returns one page of ingredients plus the total count.
func (s *IngredientService) Search(limit, offset int, sort string) ([]models.Ingredient, int64, error) {
	return s.ingredients.Search(limit, offset, sort)
}

// Put rewrites an ingredient's descriptive fields.
func (s *IngredientService) Put(ingredientIdx uuid.UUID, input IngredientInput) error {
	ingredient := models.Ingredient{
		Name:        input.Name,
		EnglishName: input.EnglishName,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	ingredient.ID = ingredientIdx
	return s.ingredients.Update(&ingredient)
}

// Delete removes an ingredient.
func (s *IngredientService) Delete(ingredientIdx uuid.UUID) error {
	return s.ingredients.Delete(ingredientIdx)
}
