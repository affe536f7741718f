package entity

import "time"

// CartItem is one (owner, product, quantity) line. Exactly one of
// UserID/SessionID is set; the composite unique indexes guarantee at most one
// row per owner per product. No soft delete: a removed row must free its
// (owner, product) slot immediately.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    *uint     `json:"userId" gorm:"uniqueIndex:idx_cart_user_product"`
	User      *User     `json:"-"`
	SessionID *string   `json:"sessionId" gorm:"uniqueIndex:idx_cart_session_product"`
	ProductID uint      `json:"productId" gorm:"not null;uniqueIndex:idx_cart_user_product;uniqueIndex:idx_cart_session_product"`
	Product   Product   `json:"-"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
}
