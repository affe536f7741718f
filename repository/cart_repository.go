package repository

import (
	"errors"
	"time"

	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// AddOrIncrement inserts a quantity-1 row for (owner, product) or bumps the
// existing one, in a single statement. The conflict target is the owner
// variant's unique index, which is what closes the double-click race: two
// concurrent adds can never produce two rows. Returns the resulting row.
func (r *CartRepository) AddOrIncrement(owner entity.Owner, productID uint) (*entity.CartItem, error) {
	row := entity.CartItem{ProductID: productID, Quantity: 1}
	target := []clause.Column{{Name: "user_id"}, {Name: "product_id"}}
	switch owner.Kind {
	case entity.OwnerUser:
		uid := owner.UserID
		row.UserID = &uid
	case entity.OwnerSession:
		sid := owner.SessionID
		row.SessionID = &sid
		target = []clause.Column{{Name: "session_id"}, {Name: "product_id"}}
	default:
		return nil, errors.New("cart: unresolved owner")
	}

	err := r.DB.Clauses(clause.OnConflict{
		Columns: target,
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	// re-read: on conflict the insert path does not report the winning row
	return r.FindByOwnerAndProduct(r.DB, owner, productID)
}

func (r *CartRepository) FindByOwnerAndProduct(tx *gorm.DB, owner entity.Owner, productID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := owner.Scope(tx).Where("product_id = ?", productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) FindByOwnerAndID(tx *gorm.DB, owner entity.Owner, id uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := owner.Scope(tx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAllByOwner loads the owner's rows with product + category for the
// projection. Empty carts come back as an empty slice, never an error.
func (r *CartRepository) FindAllByOwner(tx *gorm.DB, owner entity.Owner) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := owner.Scope(tx).
		Preload("Product").
		Preload("Product.Category").
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) UpdateQuantity(tx *gorm.DB, id uint, qty int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", id).
		Update("quantity", qty).Error
}

// Delete removes the row only when it belongs to owner. Returns true iff a
// row was removed, so callers can tell a cross-owner id guess from a hit.
func (r *CartRepository) Delete(tx *gorm.DB, owner entity.Owner, id uint) (bool, error) {
	res := owner.Scope(tx).Where("id = ?", id).Delete(&entity.CartItem{})
	return res.RowsAffected > 0, res.Error
}

func (r *CartRepository) DeleteByID(tx *gorm.DB, id uint) error {
	return tx.Where("id = ?", id).Delete(&entity.CartItem{}).Error
}

// ReassignOwner moves every row under sessionID to userID, clearing the
// session id. Collisions with rows the user already owns must be resolved by
// the caller before this runs, or the unique index will reject the update.
func (r *CartRepository) ReassignOwner(tx *gorm.DB, sessionID string, userID uint) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]any{"user_id": userID, "session_id": nil})
	return res.RowsAffected, res.Error
}
