package models

import "github.com/google/uuid"

// Review is a sniff note: a user's take on a perfume with structured scent
// attributes plus free text. Longevity, sillage, seasonal, gender and access
// carry small categorical codes; the transport layer owns their labels.
type Review struct {
	BaseModel
	PerfumeID uuid.UUID `gorm:"type:uuid;not null;index" json:"perfume_id"`
	Perfume   *Perfume  `json:"perfume,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `json:"user,omitempty"`
	Score     float64   `json:"score"`
	Longevity int       `json:"longevity"`
	Sillage   int       `json:"sillage"`
	Seasonal  int       `json:"seasonal"`
	Gender    int       `json:"gender"`
	Access    int       `json:"access"`
	Content   string    `json:"content"`

	LikeReviews []LikeReview `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// LikeReview records one user's endorsement of a review. Like counts are
// computed live from these rows.
type LikeReview struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_review_user" json:"user_id"`
	ReviewID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_review_user" json:"review_id"`
}

// PerfumeDefaultReview is the stored per-perfume rollup of review attribute
// distributions. Bucket columns hold '/'-delimited integer counts in a fixed
// order (seasonal: spring/summer/fall/winter, sillage: light/medium/heavy,
// longevity: very weak through very strong, gender: male/neutral/female).
type PerfumeDefaultReview struct {
	PerfumeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"perfume_id"`
	Rating    float64   `json:"rating"`
	Seasonal  string    `json:"seasonal"`
	Sillage   string    `json:"sillage"`
	Longevity string    `json:"longevity"`
	Gender    string    `json:"gender"`
}
