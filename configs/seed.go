package configs

import (
	"errors"
	"strings"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the initial admin account when ADMIN_EMAIL/ADMIN_PASSWORD
// are configured and no user with that email exists yet.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var exist entity.User
	err := db.Where("email = ?", email).First(&exist).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Username: "admin",
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
