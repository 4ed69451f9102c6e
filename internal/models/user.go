package models

import (
	"time"

	"gorm.io/gorm"
)

const RoleAdmin = "ADMIN"

type User struct {
	gorm.Model
	Email        string `gorm:"unique"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:ADMIN"`
	IsActive     bool   `gorm:"default:true"`
	LastLoginAt  *time.Time
}
