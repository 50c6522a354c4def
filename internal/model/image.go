package model

import "time"

// Image is a stored picture attached to a product.
type Image struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Path      string    `json:"path" gorm:"size:1024;not null"`
	ProductID int64     `json:"product_id" gorm:"index;not null"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}
