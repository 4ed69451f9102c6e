package controllers

import (
	"context"
	"time"

	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/christophe77/NovaBlog/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockSettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) GetByKeys(keys []string) (map[string]string, error) {
	args := m.Called(keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingRepository) GetValue(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSettingRepository) Upsert(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingRepository) UpsertMany(settings map[string]string) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingRepository) FindByCategories(categories []string) ([]models.Setting, error) {
	args := m.Called(categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindAll(category string) ([]models.Setting, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Setting), args.Error(1)
}

func (m *MockSettingRepository) CountByKeys(keys []string) (int64, error) {
	args := m.Called(keys)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) CreateDraft(article *models.Article, batchIndex int) error {
	args := m.Called(article, batchIndex)
	return args.Error(0)
}

func (m *MockArticleRepository) FindAll(status string, page, limit int) ([]models.Article, int64, error) {
	args := m.Called(status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindBySlug(slug string) (*models.Article, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindPublished(language string, page, limit int) ([]models.Article, int64, error) {
	args := m.Called(language, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) FindPublishedBySlug(slug string) (*models.Article, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindLatestAIGenerated() (*models.Article, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Publish(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockScheduledTaskRepository
type MockScheduledTaskRepository struct {
	mock.Mock
}

func (m *MockScheduledTaskRepository) Create(task *models.ScheduledTask) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockScheduledTaskRepository) FindLatest(taskType string) (*models.ScheduledTask, error) {
	args := m.Called(taskType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScheduledTask), args.Error(1)
}

func (m *MockScheduledTaskRepository) FindLatestCompleted(taskType string) (*models.ScheduledTask, error) {
	args := m.Called(taskType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScheduledTask), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(id uint, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(id uint, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(role string) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockResetPasswordRepository
type MockResetPasswordRepository struct {
	mock.Mock
}

func (m *MockResetPasswordRepository) Create(reset *models.ResetPassword) error {
	args := m.Called(reset)
	return args.Error(0)
}

func (m *MockResetPasswordRepository) FindByToken(token string) (*models.ResetPassword, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResetPassword), args.Error(1)
}

func (m *MockResetPasswordRepository) MarkUsed(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockAIClient
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GenerateArticle(ctx context.Context, params mistral.GenerateArticleParams, apiKey string) (*mistral.GeneratedArticle, error) {
	args := m.Called(ctx, params, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mistral.GeneratedArticle), args.Error(1)
}

func (m *MockAIClient) GenerateImageAlt(ctx context.Context, imageURL string, altCtx mistral.AltTextContext, apiKey string) (string, error) {
	args := m.Called(ctx, imageURL, altCtx, apiKey)
	return args.String(0), args.Error(1)
}

func (m *MockAIClient) GenerateSEO(ctx context.Context, pageType string, seoCtx mistral.SEOContext, apiKey string) (*mistral.SEOMetadata, error) {
	args := m.Called(ctx, pageType, seoCtx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mistral.SEOMetadata), args.Error(1)
}

func (m *MockAIClient) Model() string {
	args := m.Called()
	return args.String(0)
}
