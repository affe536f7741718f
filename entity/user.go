package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Password     string `json:"-"`
	ProfileImage string `json:"profileImage"`
	Role         string `json:"role" gorm:"not null;default:USER"`
}
