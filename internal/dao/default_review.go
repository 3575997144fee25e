package dao

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/afume/internal/apperrors"
	"github.com/example/afume/internal/models"
)

// DefaultReviewDAO maintains the per-perfume rollup of review attribute
// distributions.
type DefaultReviewDAO struct {
	db *gorm.DB
}

// NewDefaultReviewDAO constructs DefaultReviewDAO.
func NewDefaultReviewDAO(db *gorm.DB) *DefaultReviewDAO {
	return &DefaultReviewDAO{db: db}
}

// SeasonalBuckets distributes reviews over the four seasons.
type SeasonalBuckets struct {
	Spring int `json:"spring"`
	Summer int `json:"summer"`
	Fall   int `json:"fall"`
	Winter int `json:"winter"`
}

// SillageBuckets distributes reviews over scent-trail strengths.
type SillageBuckets struct {
	Light  int `json:"light"`
	Medium int `json:"medium"`
	Heavy  int `json:"heavy"`
}

// LongevityBuckets distributes reviews over persistence grades.
type LongevityBuckets struct {
	VeryWeak   int `json:"very_weak"`
	Weak       int `json:"weak"`
	Normal     int `json:"normal"`
	Strong     int `json:"strong"`
	VeryStrong int `json:"very_strong"`
}

// GenderBuckets distributes reviews over gender-fit votes.
type GenderBuckets struct {
	Male    int `json:"male"`
	Neutral int `json:"neutral"`
	Female  int `json:"female"`
}

// DefaultReviewRollup is the decoded rollup. A perfume without a stored row
// gets an all-zero rollup with the full key set, never an error.
type DefaultReviewRollup struct {
	PerfumeIdx uuid.UUID        `json:"perfume_idx"`
	Rating     float64          `json:"rating"`
	Seasonal   SeasonalBuckets  `json:"seasonal"`
	Sillage    SillageBuckets   `json:"sillage"`
	Longevity  LongevityBuckets `json:"longevity"`
	Gender     GenderBuckets    `json:"gender"`
}

// Read returns the decoded rollup for a perfume. A stored bucket string whose
// element count does not match its bucket set is treated as corruption and
// fails loudly instead of truncating.
func (d *DefaultReviewDAO) Read(perfumeIdx uuid.UUID) (DefaultReviewRollup, error) {
	rollup := DefaultReviewRollup{PerfumeIdx: perfumeIdx}

	var row models.PerfumeDefaultReview
	err := d.db.First(&row, "perfume_id = ?", perfumeIdx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rollup, nil
	}
	if err != nil {
		return DefaultReviewRollup{}, translate(err)
	}

	rollup.Rating = row.Rating

	seasonal, err := splitBuckets(row.Seasonal, 4)
	if err != nil {
		return DefaultReviewRollup{}, corruptBuckets("seasonal", row.Seasonal, err)
	}
	rollup.Seasonal = SeasonalBuckets{Spring: seasonal[0], Summer: seasonal[1], Fall: seasonal[2], Winter: seasonal[3]}

	sillage, err := splitBuckets(row.Sillage, 3)
	if err != nil {
		return DefaultReviewRollup{}, corruptBuckets("sillage", row.Sillage, err)
	}
	rollup.Sillage = SillageBuckets{Light: sillage[0], Medium: sillage[1], Heavy: sillage[2]}

	longevity, err := splitBuckets(row.Longevity, 5)
	if err != nil {
		return DefaultReviewRollup{}, corruptBuckets("longevity", row.Longevity, err)
	}
	rollup.Longevity = LongevityBuckets{
		VeryWeak:   longevity[0],
		Weak:       longevity[1],
		Normal:     longevity[2],
		Strong:     longevity[3],
		VeryStrong: longevity[4],
	}

	gender, err := splitBuckets(row.Gender, 3)
	if err != nil {
		return DefaultReviewRollup{}, corruptBuckets("gender", row.Gender, err)
	}
	rollup.Gender = GenderBuckets{Male: gender[0], Neutral: gender[1], Female: gender[2]}

	return rollup, nil
}

// Recompute rebuilds the stored rollup from the perfume's current reviews.
// With no reviews left, the rollup row is removed so reads fall back to the
// all-zero shape.
func (d *DefaultReviewDAO) Recompute(perfumeIdx uuid.UUID) error {
	return translate(d.db.Transaction(func(tx *gorm.DB) error {
		var reviews []models.Review
		err := tx.Select("score", "longevity", "sillage", "seasonal", "gender").
			Where("perfume_id = ?", perfumeIdx).
			Find(&reviews).Error
		if err != nil {
			return err
		}

		if len(reviews) == 0 {
			return tx.Delete(&models.PerfumeDefaultReview{}, "perfume_id = ?", perfumeIdx).Error
		}

		var scoreSum float64
		seasonal := make([]int, 4)
		sillage := make([]int, 3)
		longevity := make([]int, 5)
		gender := make([]int, 3)
		for _, review := range reviews {
			scoreSum += review.Score
			tally(seasonal, review.Seasonal)
			tally(sillage, review.Sillage)
			tally(longevity, review.Longevity)
			tally(gender, review.Gender)
		}

		row := models.PerfumeDefaultReview{
			PerfumeID: perfumeIdx,
			Rating:    scoreSum / float64(len(reviews)),
			Seasonal:  joinBuckets(seasonal),
			Sillage:   joinBuckets(sillage),
			Longevity: joinBuckets(longevity),
			Gender:    joinBuckets(gender),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "perfume_id"}},
			UpdateAll: true,
		}).Create(&row).Error
	}))
}

// tally counts one attribute vote. Codes are 1-based; zero means the reviewer
// skipped the attribute.
func tally(buckets []int, code int) {
	if code >= 1 && code <= len(buckets) {
		buckets[code-1]++
	}
}

func joinBuckets(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "/")
}

// splitBuckets decodes a '/'-delimited integer list and enforces the expected
// element count.
func splitBuckets(encoded string, want int) ([]int, error) {
	parts := strings.Split(encoded, "/")
	if len(parts) != want {
		return nil, pkgerrors.Errorf("want %d buckets, got %d", want, len(parts))
	}
	counts := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "bucket %d", i)
		}
		counts[i] = n
	}
	return counts, nil
}

func corruptBuckets(column, encoded string, cause error) error {
	return pkgerrors.Wrapf(apperrors.ErrDatabase, "corrupt %s buckets %q: %v", column, encoded, cause)
}
