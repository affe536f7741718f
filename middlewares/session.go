package middlewares

import (
	"net/http"
	"strings"

	"backend/configs"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthAndSession identifies the caller for cart routes. A valid bearer token
// yields a user id; an invalid or absent one is not an error here, the
// request just falls back to its anonymous session. When no session cookie
// exists a fresh one is issued so guests always have a cart to write to.
func AuthAndSession(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr := strings.TrimPrefix(h, "Bearer ")
			if claims, err := utils.ParseToken(tokenStr, cfg.AccessTokenSecret); err == nil {
				c.Set("userId", claims.UserID)
				c.Set("role", claims.Role)
			} else {
				// remembered so user-mandatory handlers answer 403, not 401
				c.Set("credentialRejected", true)
			}
		}

		sessionID, err := c.Cookie("sessionId")
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteNoneMode)
			// session cookie: no fixed expiry, lifetime policy lives upstream
			c.SetCookie("sessionId", sessionID, 0, "/", "", cfg.IsProduction(), true)
		}
		c.Set("sessionId", sessionID)

		c.Next()
	}
}
