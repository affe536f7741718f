package entity

import "gorm.io/gorm"

// OwnerKind discriminates who a cart row belongs to.
type OwnerKind int

const (
	OwnerUser OwnerKind = iota + 1
	OwnerSession
)

// Owner is the resolved identity a cart belongs to: an authenticated user or
// an anonymous session, never both. The zero value means "no owner resolved".
type Owner struct {
	Kind      OwnerKind
	UserID    uint
	SessionID string
}

func UserOwner(id uint) Owner { return Owner{Kind: OwnerUser, UserID: id} }

func SessionOwner(id string) Owner { return Owner{Kind: OwnerSession, SessionID: id} }

func (o Owner) IsZero() bool { return o.Kind == 0 }

// Scope narrows a query to rows owned by o.
func (o Owner) Scope(db *gorm.DB) *gorm.DB {
	switch o.Kind {
	case OwnerUser:
		return db.Where("user_id = ?", o.UserID)
	case OwnerSession:
		return db.Where("session_id = ?", o.SessionID)
	default:
		// unresolved owner matches nothing
		return db.Where("1 = 0")
	}
}
