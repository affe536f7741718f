package utils

import (
	"backend/entity"

	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CredentialRejected reports whether the request carried a bearer credential
// that failed verification.
func CredentialRejected(c *gin.Context) bool {
	if v, ok := c.Get("credentialRejected"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// CurrentOwner resolves the cart owner for this request. A logged-in user
// wins over the anonymous session.
func CurrentOwner(c *gin.Context) entity.Owner {
	if uid := CurrentUserID(c); uid != 0 {
		return entity.UserOwner(uid)
	}
	if sid := CurrentSessionID(c); sid != "" {
		return entity.SessionOwner(sid)
	}
	return entity.Owner{}
}
