package models

import (
	"time"

	"gorm.io/gorm"
)

// Faction groups products by the army they belong to.
type Faction struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	LogoURL     string         `gorm:"default:''" json:"logo_url"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Products []Product `gorm:"foreignKey:FactionID" json:"products,omitempty"`
}

// TableName sets the table name.
func (Faction) TableName() string {
	return "factions"
}
