package entity

import "time"

// Allowed size labels for a product.
var ProductSizes = []string{"SM", "MD", "LG", "XL"}

type Product struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	Images       []string  `json:"images" gorm:"serializer:json"`
	Videos       []string  `json:"videos" gorm:"serializer:json"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CategoryID   uint      `json:"categoryId" gorm:"not null"`
	Category     Category  `json:"category"`
	Color        string    `json:"color"`
	Sizes        []string  `json:"sizes" gorm:"serializer:json"`
	Brand        string    `json:"brand"`
}
