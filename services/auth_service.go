package services

import (
	"errors"
	"strings"

	"backend/configs"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and the access/refresh token pair.
type AuthService struct {
	userRepo *repository.UserRepository
	cfg      *configs.Config
}

func NewAuthService(repo *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{userRepo: repo, cfg: cfg}
}

type RegisterIn struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ProfileImage string `json:"profileImage" binding:"omitempty,url"`
	Role         string `json:"role" binding:"omitempty,oneof=ADMIN USER"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "check existing email")
	}
	if count > 0 {
		return nil, apperr.E(apperr.ErrValidation, "user already has an account, please log in directly")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "hash password")
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}

	user := &entity.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        email,
		Password:     string(hashed),
		ProfileImage: in.ProfileImage,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, pkgerrors.Wrap(err, "create user")
	}
	return user, nil
}

// Login checks the credentials and issues the token pair. Both an unknown
// email and a bad password are client errors, with distinct messages.
func (s *AuthService) Login(email, password string) (accessToken, refreshToken string, user *entity.User, err error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err = s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil, apperr.E(apperr.ErrValidation, "user not found, please register before logging in")
		}
		return "", "", nil, pkgerrors.Wrap(err, "find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", nil, apperr.E(apperr.ErrValidation, "incorrect password")
	}

	accessToken, err = utils.GenerateToken(user.ID, user.Role, s.cfg.AccessTokenSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", "", nil, pkgerrors.Wrap(err, "sign access token")
	}
	refreshToken, err = utils.GenerateToken(user.ID, user.Role, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenTTL)
	if err != nil {
		return "", "", nil, pkgerrors.Wrap(err, "sign refresh token")
	}
	return accessToken, refreshToken, user, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := utils.ParseToken(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", apperr.E(apperr.ErrForbidden, "forbidden")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.E(apperr.ErrUnauthorized, "unauthorized")
		}
		return "", pkgerrors.Wrap(err, "find user")
	}

	return utils.GenerateToken(user.ID, user.Role, s.cfg.AccessTokenSecret, s.cfg.AccessTokenTTL)
}
