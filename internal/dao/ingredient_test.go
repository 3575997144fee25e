package dao

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

func TestIngredientDAOCreateRead(t *testing.T) {
	db := newTestDB(t)
	d := NewIngredientDAO(db)

	series := seedSeries(t, db, "Woody")

	ingredient := models.Ingredient{Name: "Sandalwood", EnglishName: "Sandalwood", SeriesID: series.ID}
	require.NoError(t, d.Create(&ingredient))

	got, err := d.ReadByIdx(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sandalwood", got.Name)
	require.NotNil(t, got.Series)
	assert.Equal(t, "Woody", got.Series.Name)

	t.Run("duplicate name", func(t *testing.T) {
		dup := models.Ingredient{Name: "Sandalwood", SeriesID: series.ID}
		assert.ErrorIs(t, d.Create(&dup), apperrors.ErrDuplicateEntry)
	})

	t.Run("dangling series", func(t *testing.T) {
		orphan := models.Ingredient{Name: "Cedar", SeriesID: uuid.New()}
		assert.ErrorIs(t, d.Create(&orphan), apperrors.ErrNoReferencedRow)
	})

	t.Run("missing ingredient", func(t *testing.T) {
		_, err := d.ReadByIdx(uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrNotMatched)
	})
}

func TestIngredientDAOSearch(t *testing.T) {
	db := newTestDB(t)
	d := NewIngredientDAO(db)

	series := seedSeries(t, db, "Floral")
	for _, name := range []string{"Rose", "Jasmine", "Tuberose", "Ylang Ylang"} {
		require.NoError(t, d.Create(&models.Ingredient{Name: name, SeriesID: series.ID}))
	}

	all, err := d.ReadAll("name_asc")
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Jasmine", all[0].Name)

	page, total, err := d.Search(2, 2, "name_asc")
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Tuberose", page[0].Name)
	assert.Equal(t, "Ylang Ylang", page[1].Name)
}

func TestIngredientDAOUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	d := NewIngredientDAO(db)

	series := seedSeries(t, db, "Citrus")
	ingredient := models.Ingredient{Name: "Bergamot", SeriesID: series.ID}
	require.NoError(t, d.Create(&ingredient))

	ingredient.Description = "bitter orange peel"
	require.NoError(t, d.Update(&ingredient))

	got, err := d.ReadByIdx(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, "bitter orange peel", got.Description)

	require.NoError(t, d.Delete(ingredient.ID))
	assert.ErrorIs(t, d.Delete(ingredient.ID), apperrors.ErrNotMatched)

	ghost := models.Ingredient{Name: "Ghost"}
	ghost.ID = uuid.New()
	assert.ErrorIs(t, d.Update(&ghost), apperrors.ErrNotMatched)
}
