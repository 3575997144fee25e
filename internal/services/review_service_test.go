package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/models"
)

func newReviewFixture(t *testing.T) (*ReviewService, *PerfumeService, uuid.UUID, uuid.UUID, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	likeDAO := dao.NewLikeDAO(db)
	rollupDAO := dao.NewDefaultReviewDAO(db)
	reviews := NewReviewService(dao.NewReviewDAO(db), likeDAO, rollupDAO)
	perfumes := NewPerfumeService(dao.NewPerfumeDAO(db), rollupDAO, likeDAO)

	brand, series := seedCatalog(t, db)
	perfume, err := perfumes.Create(PerfumeInput{
		BrandID:        brand.ID,
		SeriesID:       series.ID,
		Name:           "Vetiver Extraordinaire",
		Story:          "roots and earth",
		AbundanceRate:  models.AbundanceEauDeParfum,
		VolumeAndPrice: `{"50":"170000"}`,
	})
	require.NoError(t, err)

	user := models.User{Nickname: "clove", Email: "clove@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	return reviews, perfumes, perfume.ID, user.ID, db
}

func TestReviewServiceRollupLifecycle(t *testing.T) {
	reviews, perfumes, perfumeIdx, userIdx, db := newReviewFixture(t)

	t.Run("fresh perfume reads a zero rollup", func(t *testing.T) {
		view, err := perfumes.Get(perfumeIdx)
		require.NoError(t, err)
		assert.Zero(t, view.DefaultReview.Rating)
		assert.Equal(t, dao.SeasonalBuckets{}, view.DefaultReview.Seasonal)
	})

	review, err := reviews.Post(perfumeIdx, userIdx, ReviewInput{
		Score:     4.0,
		Longevity: 3,
		Sillage:   2,
		Seasonal:  1,
		Gender:    2,
		Access:    1,
		Content:   "green and rooty",
	})
	require.NoError(t, err)

	t.Run("posting refreshes the rollup", func(t *testing.T) {
		view, err := perfumes.Get(perfumeIdx)
		require.NoError(t, err)
		assert.Equal(t, 4.0, view.DefaultReview.Rating)
		assert.Equal(t, dao.SeasonalBuckets{Spring: 1}, view.DefaultReview.Seasonal)
		assert.Equal(t, dao.SillageBuckets{Medium: 1}, view.DefaultReview.Sillage)
		assert.Equal(t, dao.LongevityBuckets{Normal: 1}, view.DefaultReview.Longevity)
		assert.Equal(t, dao.GenderBuckets{Neutral: 1}, view.DefaultReview.Gender)
	})

	t.Run("updating refreshes the rollup", func(t *testing.T) {
		err := reviews.Update(review.ID, ReviewInput{
			Score: 2.0, Longevity: 1, Sillage: 3, Seasonal: 4, Gender: 1, Access: 1,
			Content: "changed my mind",
		})
		require.NoError(t, err)

		view, err := perfumes.Get(perfumeIdx)
		require.NoError(t, err)
		assert.Equal(t, 2.0, view.DefaultReview.Rating)
		assert.Equal(t, dao.SeasonalBuckets{Winter: 1}, view.DefaultReview.Seasonal)
		assert.Equal(t, dao.SillageBuckets{Heavy: 1}, view.DefaultReview.Sillage)
	})

	t.Run("deleting the last review empties the rollup", func(t *testing.T) {
		require.NoError(t, reviews.Delete(review.ID))

		view, err := perfumes.Get(perfumeIdx)
		require.NoError(t, err)
		assert.Zero(t, view.DefaultReview.Rating)
		assert.Equal(t, dao.SeasonalBuckets{}, view.DefaultReview.Seasonal)

		var count int64
		require.NoError(t, db.Model(&models.PerfumeDefaultReview{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestReviewServiceAveragesScores(t *testing.T) {
	reviews, perfumes, perfumeIdx, userIdx, db := newReviewFixture(t)

	second := models.User{Nickname: "pepper", Email: "pepper@example.com", Password: "hash"}
	require.NoError(t, db.Create(&second).Error)

	_, err := reviews.Post(perfumeIdx, userIdx, ReviewInput{Score: 5.0, Seasonal: 1})
	require.NoError(t, err)
	_, err = reviews.Post(perfumeIdx, second.ID, ReviewInput{Score: 2.0, Seasonal: 2})
	require.NoError(t, err)

	view, err := perfumes.Get(perfumeIdx)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, view.DefaultReview.Rating, 1e-9)
	assert.Equal(t, dao.SeasonalBuckets{Spring: 1, Summer: 1}, view.DefaultReview.Seasonal)
}

func TestReviewServiceGetStripsAuthorPassword(t *testing.T) {
	reviews, _, perfumeIdx, userIdx, _ := newReviewFixture(t)

	posted, err := reviews.Post(perfumeIdx, userIdx, ReviewInput{Score: 3.0, Content: "fine"})
	require.NoError(t, err)

	review, err := reviews.Get(posted.ID)
	require.NoError(t, err)
	require.NotNil(t, review.User)
	assert.Empty(t, review.User.Password)

	_, err = reviews.Get(uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotMatched)
}

func TestReviewServiceLike(t *testing.T) {
	reviews, _, perfumeIdx, userIdx, db := newReviewFixture(t)

	posted, err := reviews.Post(perfumeIdx, userIdx, ReviewInput{Score: 3.0})
	require.NoError(t, err)

	fan := models.User{Nickname: "anise", Email: "anise@example.com", Password: "hash"}
	require.NoError(t, db.Create(&fan).Error)

	require.NoError(t, reviews.Like(fan.ID, posted.ID))
	assert.ErrorIs(t, reviews.Like(fan.ID, posted.ID), apperrors.ErrDuplicateEntry)

	items, err := reviews.GetOfPerfumeByLike(perfumeIdx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].LikeCount)

	require.NoError(t, reviews.Unlike(fan.ID, posted.ID))
	assert.ErrorIs(t, reviews.Unlike(fan.ID, posted.ID), apperrors.ErrNotMatched)
}
