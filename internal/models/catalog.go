package models

import "github.com/google/uuid"

// Brand is a perfume house referenced by perfumes.
type Brand struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	EnglishName string `json:"english_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Series is a scent family (woody, floral, ...) perfumes are classified under.
type Series struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	EnglishName string `json:"english_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// TableName keeps the table out of gorm's pluralizer ("series" is already plural).
func (Series) TableName() string {
	return "series"
}

// Ingredient is a scent component belonging to one series.
type Ingredient struct {
	BaseModel
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	EnglishName string    `json:"english_name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	SeriesID    uuid.UUID `gorm:"type:uuid;not null;index" json:"series_id"`
	Series      *Series   `json:"series,omitempty"`
}
