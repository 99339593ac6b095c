package models

import (
	"time"
)

// Order is a write-once record of a cart at a point in time. Rows are
// created and read, never updated; there is no status machine beyond the
// initial PENDING.
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OrderNumber string    `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Status      string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TotalAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	User  *User       `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots one cart line at order time. Product name and unit
// price are copied so later catalog edits never rewrite order history.
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	ProductName string    `gorm:"not null" json:"product_name"`
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	LineTotal   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
