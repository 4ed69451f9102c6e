package models

import (
	"time"

	"gorm.io/gorm"
)

type ResetPassword struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Token     string         `gorm:"uniqueIndex" json:"token"`
	UserID    uint           `json:"user_id"`
	ExpiresAt time.Time      `json:"expires_at" example:"2023-01-01T00:00:00Z"`
	Used      bool           `gorm:"default:false" json:"used"`
}
