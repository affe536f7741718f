package controllers

import (
	"net/http"

	"backend/configs"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "jwt"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthController struct {
	Svc *services.AuthService
	Cfg *configs.Config
}

func NewAuthController(s *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Svc: s, Cfg: cfg}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "user registered", gin.H{
		"id": user.ID, "username": user.Username, "email": user.Email,
		"profileImage": user.ProfileImage, "role": user.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	accessToken, refreshToken, _, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(refreshCookie, refreshToken, int(a.Cfg.RefreshTokenTTL.Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "accessToken": accessToken})
}

// GET /auth/refresh — access token renewal off the refresh cookie.
func (a *AuthController) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil || refreshToken == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	accessToken, err := a.Svc.Refresh(refreshToken)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "accessToken": accessToken})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if _, err := c.Cookie(refreshCookie); err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(refreshCookie, "", -1, "/", "", true, true)
	resp.OKMessage(c, "cookie cleared", nil)
}
