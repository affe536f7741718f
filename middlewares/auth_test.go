package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/entity"
	"backend/middlewares"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := sessionTestConfig()

	r := gin.New()
	r.GET("/admin", middlewares.Auth(cfg, entity.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	adminToken, err := utils.GenerateToken(1, entity.RoleAdmin, cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	require.NoError(t, err)
	userToken, err := utils.GenerateToken(2, entity.RoleUser, cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer garbage", http.StatusForbidden},
		{"wrong role", "Bearer " + userToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
