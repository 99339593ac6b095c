package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a single shop item. Category is one of the constants in the
// constants package (MINIATURE, STARTER_SET, PAINT, ACCESSORY, BOOK).
// FactionID is optional: paints and hobby supplies belong to no faction.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	FactionID   *uint          `gorm:"index" json:"faction_id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"type:varchar(20);not null;index" json:"category"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	IsPreorder  bool           `gorm:"default:false" json:"is_preorder"`
	ReleaseDate *time.Time     `json:"release_date"`
	ImageURL    string         `gorm:"default:''" json:"image_url"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Faction *Faction `gorm:"foreignKey:FactionID" json:"faction,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
