package middlewares

import (
	"strings"

	"backend/configs"
	"backend/pkg/resp"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// Auth requires a valid bearer access token and (optionally) one of the given
// roles. Missing/malformed header is 401; a token that fails verification is
// 403, matching the refresh-flow contract.
func Auth(cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, cfg.AccessTokenSecret)
		if err != nil {
			resp.Forbidden(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "you do not have permission to access this resource")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
