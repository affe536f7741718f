package entity

import "time"

// Category rows are hard-deleted so a name can be reused after delete.
type Category struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
}
