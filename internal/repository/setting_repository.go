package repository

import (
	"strings"

	"github.com/christophe77/NovaBlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository is the durable key/value configuration store.
// Values are opaque JSON strings; a missing key is not an error and
// callers supply their own defaults.
type SettingRepository interface {
	GetByKeys(keys []string) (map[string]string, error)
	GetValue(key string) (string, bool, error)
	Upsert(key, value string) error
	UpsertMany(settings map[string]string) error
	FindByCategories(categories []string) ([]models.Setting, error)
	FindAll(category string) ([]models.Setting, error)
	CountByKeys(keys []string) (int64, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// CategoryForKey returns the dot-namespace prefix of a setting key,
// or "general" when the key has no namespace.
func CategoryForKey(key string) string {
	if idx := strings.Index(key, "."); idx > 0 {
		return key[:idx]
	}
	return "general"
}

func (r *settingRepository) GetByKeys(keys []string) (map[string]string, error) {
	var settings []models.Setting
	if err := r.db.Where("key IN ?", keys).Find(&settings).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	return values, nil
}

func (r *settingRepository) GetValue(key string) (string, bool, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

func (r *settingRepository) Upsert(key, value string) error {
	setting := models.Setting{
		Key:      key,
		Value:    value,
		Category: CategoryForKey(key),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "category", "updated_at"}),
	}).Create(&setting).Error
}

// UpsertMany upserts each key individually. There is no multi-key
// transaction: concurrent readers may observe a partially-applied
// batch, which is acceptable for rare operator-driven edits.
func (r *settingRepository) UpsertMany(settings map[string]string) error {
	for key, value := range settings {
		if err := r.Upsert(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *settingRepository) FindByCategories(categories []string) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Where("category IN ?", categories).Order("key asc").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) FindAll(category string) ([]models.Setting, error) {
	var settings []models.Setting
	query := r.db.Order("key asc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&settings).Error
	return settings, err
}

func (r *settingRepository) CountByKeys(keys []string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Setting{}).Where("key IN ?", keys).Count(&count).Error
	return count, err
}
