package models

import "github.com/google/uuid"

// AbundanceRate is the perfume oil concentration tier.
type AbundanceRate int

const (
	AbundanceNone AbundanceRate = iota
	AbundanceCologne
	AbundanceEauDeCologne
	AbundanceEauDeToilette
	AbundanceEauDeParfum
	AbundanceParfum
)

// Perfume is the catalog entity shown in listings. Detail fields live in
// PerfumeDetail, created and deleted together with the perfume.
type Perfume struct {
	BaseModel
	BrandID           uuid.UUID `gorm:"type:uuid;not null;index" json:"brand_id"`
	Brand             *Brand    `json:"brand,omitempty"`
	SeriesID          uuid.UUID `gorm:"type:uuid;not null;index" json:"series_id"`
	Series            *Series   `json:"series,omitempty"`
	Name              string    `gorm:"uniqueIndex;not null" json:"name"`
	EnglishName       string    `json:"english_name"`
	ImageThumbnailURL string    `json:"image_thumbnail_url"`

	Detail        *PerfumeDetail        `gorm:"constraint:OnDelete:CASCADE" json:"detail,omitempty"`
	DefaultReview *PerfumeDefaultReview `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reviews       []Review              `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	LikePerfumes  []LikePerfume         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Wishlists     []Wishlist            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// PerfumeDetail is the 1:1 extension of Perfume. VolumeAndPrice holds the
// serialized volume-to-price mapping, e.g. {"30":"95000","100":"190000"}.
type PerfumeDetail struct {
	PerfumeID      uuid.UUID     `gorm:"type:uuid;primaryKey" json:"perfume_id"`
	Story          string        `json:"story"`
	AbundanceRate  AbundanceRate `json:"abundance_rate"`
	VolumeAndPrice string        `json:"volume_and_price"`
	ImageURL       string        `json:"image_url"`
}

// LikePerfume records one user's like on a perfume. Popularity is always a
// live count over these rows, never a stored counter.
type LikePerfume struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_perfume_user" json:"user_id"`
	PerfumeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_perfume_user" json:"perfume_id"`
}

// Wishlist records a perfume a user wants, ranked by priority.
type Wishlist struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_perfume" json:"user_id"`
	PerfumeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_perfume" json:"perfume_id"`
	Priority  int       `json:"priority"`
}
