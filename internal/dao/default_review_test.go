package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

func TestDefaultReviewDAORead(t *testing.T) {
	db := newTestDB(t)
	d := NewDefaultReviewDAO(db)

	brand := seedBrand(t, db, "Tom Ford")
	series := seedSeries(t, db, "Oriental")
	perfume := seedPerfume(t, db, brand, series, "Tobacco Vanille", time.Now())

	require.NoError(t, db.Create(&models.PerfumeDefaultReview{
		PerfumeID: perfume.ID,
		Rating:    1.95,
		Seasonal:  "4/3/2/1",
		Sillage:   "1/2/3",
		Longevity: "1/2/3/4/5",
		Gender:    "2/3/4",
	}).Error)

	rollup, err := d.Read(perfume.ID)
	require.NoError(t, err)
	assert.Equal(t, perfume.ID, rollup.PerfumeIdx)
	assert.Equal(t, 1.95, rollup.Rating)
	assert.Equal(t, SeasonalBuckets{Spring: 4, Summer: 3, Fall: 2, Winter: 1}, rollup.Seasonal)
	assert.Equal(t, SillageBuckets{Light: 1, Medium: 2, Heavy: 3}, rollup.Sillage)
	assert.Equal(t, LongevityBuckets{VeryWeak: 1, Weak: 2, Normal: 3, Strong: 4, VeryStrong: 5}, rollup.Longevity)
	assert.Equal(t, GenderBuckets{Male: 2, Neutral: 3, Female: 4}, rollup.Gender)
}

func TestDefaultReviewDAOReadAbsentRow(t *testing.T) {
	db := newTestDB(t)
	d := NewDefaultReviewDAO(db)

	brand := seedBrand(t, db, "Vilhelm")
	series := seedSeries(t, db, "Green")
	perfume := seedPerfume(t, db, brand, series, "Basilico & Fellini", time.Now())

	rollup, err := d.Read(perfume.ID)
	require.NoError(t, err)
	assert.Equal(t, perfume.ID, rollup.PerfumeIdx)
	assert.Zero(t, rollup.Rating)
	assert.Equal(t, SeasonalBuckets{}, rollup.Seasonal)
	assert.Equal(t, SillageBuckets{}, rollup.Sillage)
	assert.Equal(t, LongevityBuckets{}, rollup.Longevity)
	assert.Equal(t, GenderBuckets{}, rollup.Gender)
}

func TestDefaultReviewDAOReadCorruptBuckets(t *testing.T) {
	testCases := []struct {
		name string
		row  models.PerfumeDefaultReview
	}{
		{
			name: "seasonal element count mismatch",
			row: models.PerfumeDefaultReview{
				Seasonal: "1/2/3", Sillage: "0/0/0", Longevity: "0/0/0/0/0", Gender: "0/0/0",
			},
		},
		{
			name: "non-integer bucket",
			row: models.PerfumeDefaultReview{
				Seasonal: "0/0/0/0", Sillage: "a/0/0", Longevity: "0/0/0/0/0", Gender: "0/0/0",
			},
		},
		{
			name: "trailing delimiter",
			row: models.PerfumeDefaultReview{
				Seasonal: "0/0/0/0", Sillage: "0/0/0", Longevity: "0/0/0/0/0", Gender: "1/2/3/",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			d := NewDefaultReviewDAO(db)

			brand := seedBrand(t, db, "Xerjoff")
			series := seedSeries(t, db, "Amber")
			perfume := seedPerfume(t, db, brand, series, "Naxos", time.Now())

			tc.row.PerfumeID = perfume.ID
			require.NoError(t, db.Create(&tc.row).Error)

			_, err := d.Read(perfume.ID)
			assert.ErrorIs(t, err, apperrors.ErrDatabase)
		})
	}
}

func TestRollupRecomputedFromReviews(t *testing.T) {
	db := newTestDB(t)
	d := NewDefaultReviewDAO(db)
	reviews := NewReviewDAO(db)

	brand := seedBrand(t, db, "Nishane")
	series := seedSeries(t, db, "Gourmand")
	perfume := seedPerfume(t, db, brand, series, "Ani", time.Now())
	user := seedUser(t, db, "cardamom")

	review := newReview(perfume.ID, user.ID, 4.0, time.Now())
	require.NoError(t, reviews.Create(&review))
	require.NoError(t, d.Recompute(perfume.ID))

	rollup, err := d.Read(perfume.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, rollup.Rating)
	assert.Equal(t, SeasonalBuckets{Spring: 1}, rollup.Seasonal)
	assert.Equal(t, SillageBuckets{Medium: 1}, rollup.Sillage)
	assert.Equal(t, LongevityBuckets{Normal: 1}, rollup.Longevity)
	assert.Equal(t, GenderBuckets{Neutral: 1}, rollup.Gender)

	// Deleting the only review empties the rollup again.
	require.NoError(t, reviews.Delete(review.ID))
	require.NoError(t, d.Recompute(perfume.ID))
	rollup, err = d.Read(perfume.ID)
	require.NoError(t, err)
	assert.Zero(t, rollup.Rating)
	assert.Equal(t, SeasonalBuckets{}, rollup.Seasonal)
}
