package domain

import "github.com/bwmarrin/snowflake"

// Demographics is the optional self-declared profile attached to a review,
// stored in its own table keyed by the review id. Coordinates are raw
// lat/long values; no geographic computation happens on them.
type Demographics struct {
	ReviewID  snowflake.ID `gorm:"column:review_id;primaryKey"`
	Race      *string      `gorm:"type:text"`
	Gender    *string      `gorm:"type:text"`
	Age       *int         `gorm:"column:age"`
	Latitude  *float64     `gorm:"column:latitude"`
	Longitude *float64     `gorm:"column:longitude"`
}

func (Demographics) TableName() string { return "review_demographics" }
