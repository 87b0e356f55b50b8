package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// System is a municipal digital system listed in the catalog. Rating and
// ReviewCount are denormalized from the reviews table and only ever written
// inside the review submission transaction.
type System struct {
	ID              snowflake.ID `gorm:"primaryKey"`
	Name            string       `gorm:"type:text;not null"`
	Description     string       `gorm:"type:text;not null"`
	FullDescription *string      `gorm:"type:text"`
	TargetAudience  *string      `gorm:"type:text"`
	SecretaryCode   string       `gorm:"column:secretary_code;type:text;not null;index"`
	LaunchYear      *int         `gorm:"column:launch_year"`
	CategoryCode    string       `gorm:"column:category_code;type:text;not null;index"`
	Highlight       bool         `gorm:"not null;default:false"`
	IconURL         *string      `gorm:"column:icon_url;type:text"`
	AccessURL       *string      `gorm:"column:access_url;type:text"`
	PWAURL          *string      `gorm:"column:pwa_url;type:text"`
	UsageCount      int64        `gorm:"not null;default:0"`
	DownloadCount   int64        `gorm:"not null;default:0"`
	Rating          *float64     `gorm:"column:rating"`
	ReviewCount     int          `gorm:"not null;default:0"`

	Features []SystemFeature `gorm:"foreignKey:SystemID"`
	Reviews  []Review        `gorm:"foreignKey:SystemID"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (System) TableName() string { return "systems" }

// SystemFeature is a single free-text feature line belonging to one system.
type SystemFeature struct {
	ID       snowflake.ID `gorm:"primaryKey"`
	SystemID snowflake.ID `gorm:"column:system_id;not null;index"`
	Label    string       `gorm:"type:text;not null"`
	Position int          `gorm:"not null;default:0"`
}

func (SystemFeature) TableName() string { return "system_features" }

// Review is an append-only citizen review of a system.
type Review struct {
	ID       snowflake.ID `gorm:"primaryKey"`
	SystemID snowflake.ID `gorm:"column:system_id;not null;index"`
	UserName string       `gorm:"column:user_name;type:text;not null"`
	Rating   int          `gorm:"not null"`
	Comment  string       `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Review) TableName() string { return "reviews" }
