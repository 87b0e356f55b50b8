package domain

import "time"

// Category is a catalog presentation section. It is a taxonomy independent
// from the department buckets below; the two are never merged.
type Category struct {
	Code      string    `json:"code" gorm:"type:text;primaryKey;column:code"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }

// Secretary is a municipal department identified by a short code.
type Secretary struct {
	Code      string    `json:"code" gorm:"type:text;primaryKey;column:code"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Secretary) TableName() string { return "secretaries" }
