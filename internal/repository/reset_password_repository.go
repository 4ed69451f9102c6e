package repository

import (
	"github.com/christophe77/NovaBlog/internal/models"
	"gorm.io/gorm"
)

type ResetPasswordRepository interface {
	Create(reset *models.ResetPassword) error
	FindByToken(token string) (*models.ResetPassword, error)
	MarkUsed(id uint) error
}

type resetPasswordRepository struct {
	db *gorm.DB
}

func NewResetPasswordRepository(db *gorm.DB) ResetPasswordRepository {
	return &resetPasswordRepository{db: db}
}

func (r *resetPasswordRepository) Create(reset *models.ResetPassword) error {
	return r.db.Create(reset).Error
}

func (r *resetPasswordRepository) FindByToken(token string) (*models.ResetPassword, error) {
	var reset models.ResetPassword
	err := r.db.Where("token = ?", token).First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *resetPasswordRepository) MarkUsed(id uint) error {
	return r.db.Model(&models.ResetPassword{}).Where("id = ?", id).
		Update("used", true).Error
}
