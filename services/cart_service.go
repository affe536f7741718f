package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	CartEventIncrement = "INC"
	CartEventDecrement = "DEC"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr}
}

// CartLine is one projected cart row: the line item joined with its product
// and category plus the computed line total.
type CartLine struct {
	ID           uint            `json:"id"`
	ProductID    uint            `json:"productId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Images       []string        `json:"images"`
	Videos       []string        `json:"videos"`
	Availability bool            `json:"availability"`
	Category     entity.Category `json:"category"`
	Color        string          `json:"color"`
	Sizes        []string        `json:"sizes"`
	Brand        string          `json:"brand"`
	Quantity     int             `json:"quantity"`
	TotalPrice   float64         `json:"totalPrice"`
}

type CartView struct {
	Items     []CartLine `json:"items"`
	CartTotal float64    `json:"cartTotal"`
	CartSize  int        `json:"cartSize"`
}

// AddItem creates a quantity-1 line for (owner, product) or increments the
// existing one. The bool reports whether the line is new, which only changes
// the response wording.
func (s *CartService) AddItem(owner entity.Owner, productID uint) (*entity.CartItem, bool, error) {
	var product entity.Product
	if err := s.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.E(apperr.ErrNotFound, "product not found")
		}
		return nil, false, pkgerrors.Wrap(err, "load product")
	}

	item, err := s.CartRepo.AddOrIncrement(owner, productID)
	if err != nil {
		return nil, false, pkgerrors.Wrap(err, "add to cart")
	}
	// the upsert only ever inserts at quantity 1
	return item, item.Quantity == 1, nil
}

// RemoveItem deletes the line item unconditionally, but only within the
// owner's rows. An id under a different owner is indistinguishable from a
// missing one.
func (s *CartService) RemoveItem(owner entity.Owner, cartItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		removed, err := s.CartRepo.Delete(tx, owner, cartItemID)
		if err != nil {
			return pkgerrors.Wrap(err, "remove cart item")
		}
		if !removed {
			return apperr.E(apperr.ErrNotFound, "product not found in the cart")
		}
		return nil
	})
}

// AdjustQuantity applies an INC or DEC event to the owner's line item. A DEC
// at quantity 1 deletes the row; quantity never persists at 0. The returned
// bool reports whether the row was removed.
func (s *CartService) AdjustQuantity(owner entity.Owner, cartItemID uint, event string) (*entity.CartItem, bool, error) {
	if event != CartEventIncrement && event != CartEventDecrement {
		return nil, false, apperr.E(apperr.ErrValidation, "event must be 'INC' or 'DEC'")
	}

	var item *entity.CartItem
	removed := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = s.CartRepo.FindByOwnerAndID(tx, owner, cartItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.E(apperr.ErrNotFound, "cart item not found")
			}
			return pkgerrors.Wrap(err, "load cart item")
		}

		switch event {
		case CartEventIncrement:
			item.Quantity++
			return s.CartRepo.UpdateQuantity(tx, item.ID, item.Quantity)
		default: // DEC
			if item.Quantity == 1 {
				removed = true
				return s.CartRepo.DeleteByID(tx, item.ID)
			}
			item.Quantity--
			return s.CartRepo.UpdateQuantity(tx, item.ID, item.Quantity)
		}
	})
	if err != nil {
		return nil, false, err
	}
	if removed {
		return nil, true, nil
	}
	return item, false, nil
}

// MergeSessionIntoUser re-owns every session row to the user on login. When
// the user already has a row for a product in the session cart the
// quantities are summed and the session row dropped, so the merge never
// creates a duplicate (user, product) pair.
func (s *CartService) MergeSessionIntoUser(sessionID string, userID uint) (int64, error) {
	if sessionID == "" {
		return 0, apperr.E(apperr.ErrValidation, "session ID is required")
	}

	var moved int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		sessionRows, err := s.CartRepo.FindAllByOwner(tx, entity.SessionOwner(sessionID))
		if err != nil {
			return pkgerrors.Wrap(err, "load session cart")
		}
		if len(sessionRows) == 0 {
			return apperr.E(apperr.ErrNotFound, "no cart found for the provided session ID")
		}

		user := entity.UserOwner(userID)
		for _, row := range sessionRows {
			existing, err := s.CartRepo.FindByOwnerAndProduct(tx, user, row.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return pkgerrors.Wrap(err, "check merge collision")
			}
			// collision: fold the session row into the user's
			if err := s.CartRepo.UpdateQuantity(tx, existing.ID, existing.Quantity+row.Quantity); err != nil {
				return pkgerrors.Wrap(err, "sum merged quantity")
			}
			if err := s.CartRepo.DeleteByID(tx, row.ID); err != nil {
				return pkgerrors.Wrap(err, "drop merged session row")
			}
			moved++
		}

		reassigned, err := s.CartRepo.ReassignOwner(tx, sessionID, userID)
		if err != nil {
			return pkgerrors.Wrap(err, "reassign session cart")
		}
		moved += reassigned
		return nil
	})
	if err != nil {
		return 0, err
	}
	return moved, nil
}

// GetCart builds the projection for the owner. An empty cart is a valid,
// zero-valued view.
func (s *CartService) GetCart(owner entity.Owner) (*CartView, error) {
	rows, err := s.CartRepo.FindAllByOwner(s.DB, owner)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load cart")
	}

	view := &CartView{Items: []CartLine{}}
	for _, row := range rows {
		line := CartLine{
			ID:           row.ID,
			ProductID:    row.ProductID,
			Name:         row.Product.Name,
			Description:  row.Product.Description,
			Price:        row.Product.Price,
			Images:       row.Product.Images,
			Videos:       row.Product.Videos,
			Availability: row.Product.Availability,
			Category:     row.Product.Category,
			Color:        row.Product.Color,
			Sizes:        row.Product.Sizes,
			Brand:        row.Product.Brand,
			Quantity:     row.Quantity,
			TotalPrice:   row.Product.Price * float64(row.Quantity),
		}
		view.Items = append(view.Items, line)
		view.CartTotal += line.TotalPrice
		view.CartSize += line.Quantity
	}
	return view, nil
}
