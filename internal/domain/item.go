package domain

import "time"

// Item is a marketplace listing. SellerID records ownership; every mutation
// must be scoped to it.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null;index" json:"name"`
	Category    string    `gorm:"size:64;not null;index" json:"category"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Stock       int       `gorm:"not null" json:"stock"`
	Price       float64   `gorm:"not null" json:"price"`
	SellerID    uint      `gorm:"not null;index" json:"seller_id"`
	Seller      *User     `gorm:"foreignKey:SellerID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
