package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/christophe77/NovaBlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupArticleController() (*ArticleController, *MockArticleRepository, *MockSettingRepository, *MockAIClient) {
	articleRepo := new(MockArticleRepository)
	settingRepo := new(MockSettingRepository)
	ai := new(MockAIClient)
	return NewArticleController(articleRepo, settingRepo, ai), articleRepo, settingRepo, ai
}

func TestGetArticleByIDInvalidID(t *testing.T) {
	controller, _, _, _ := setupArticleController()
	router := setupTestRouter()
	router.GET("/articles/:id", controller.GetArticleByID)

	w := performRequest(router, http.MethodGet, "/articles/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticleByIDNotFound(t *testing.T) {
	controller, articleRepo, _, _ := setupArticleController()
	articleRepo.On("FindByID", uint(42)).Return(nil, gorm.ErrRecordNotFound)

	router := setupTestRouter()
	router.GET("/articles/:id", controller.GetArticleByID)

	w := performRequest(router, http.MethodGet, "/articles/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateArticle(t *testing.T) {
	controller, articleRepo, _, _ := setupArticleController()
	articleRepo.On("Create", mock.MatchedBy(func(article *models.Article) bool {
		return article.Title == "Manual post" &&
			article.Source == models.ArticleSourceManual &&
			article.Status == models.ArticleStatusDraft &&
			article.Keywords == `["go","testing"]`
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/articles", controller.CreateArticle)

	w := performRequest(router, http.MethodPost, "/articles", map[string]interface{}{
		"title":    "Manual post",
		"content":  "Body",
		"keywords": []string{"go", "testing"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	articleRepo.AssertExpectations(t)
}

func TestCreateArticlePublishedSetsTimestamp(t *testing.T) {
	controller, articleRepo, _, _ := setupArticleController()
	articleRepo.On("Create", mock.MatchedBy(func(article *models.Article) bool {
		return article.Status == models.ArticleStatusPublished && article.PublishedAt != nil
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/articles", controller.CreateArticle)

	w := performRequest(router, http.MethodPost, "/articles", map[string]interface{}{
		"title":   "Published post",
		"content": "Body",
		"status":  models.ArticleStatusPublished,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	articleRepo.AssertExpectations(t)
}

func TestCreateArticleRequiresTitleAndContent(t *testing.T) {
	controller, _, _, _ := setupArticleController()
	router := setupTestRouter()
	router.POST("/articles", controller.CreateArticle)

	w := performRequest(router, http.MethodPost, "/articles", map[string]interface{}{
		"title": "No content",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublishArticle(t *testing.T) {
	controller, articleRepo, _, _ := setupArticleController()
	now := time.Now()
	articleRepo.On("Publish", uint(7)).Return(&models.Article{
		Status:      models.ArticleStatusPublished,
		PublishedAt: &now,
	}, nil)

	router := setupTestRouter()
	router.POST("/articles/:id/publish", controller.PublishArticle)

	w := performRequest(router, http.MethodPost, "/articles/7/publish", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	articleRepo.AssertExpectations(t)
}

func TestGenerateArticlePreview(t *testing.T) {
	controller, _, settingRepo, ai := setupArticleController()

	settingRepo.On("GetByKeys", mock.Anything).Return(map[string]string{
		"ai.apiKey": `"settings-key"`,
		"ai.tone":   `"playful"`,
	}, nil)
	ai.On("GenerateArticle", mock.Anything, mock.MatchedBy(func(params mistral.GenerateArticleParams) bool {
		return params.Topic == "Topic X" && params.Tone == "playful"
	}), "settings-key").
		Return(&mistral.GeneratedArticle{Title: "Generated", Content: "Body", Excerpt: "Summary"}, nil)

	router := setupTestRouter()
	router.POST("/ai/generate-article", controller.GenerateArticle)

	w := performRequest(router, http.MethodPost, "/ai/generate-article", map[string]interface{}{
		"topic": "Topic X",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Generated", data["title"])
	ai.AssertExpectations(t)
}

func TestGenerateArticleMissingKey(t *testing.T) {
	controller, _, settingRepo, ai := setupArticleController()

	settingRepo.On("GetByKeys", mock.Anything).Return(map[string]string{}, nil)
	ai.On("GenerateArticle", mock.Anything, mock.Anything, "").
		Return(nil, &mistral.ConfigurationError{Reason: "API key is not configured"})

	router := setupTestRouter()
	router.POST("/ai/generate-article", controller.GenerateArticle)

	w := performRequest(router, http.MethodPost, "/ai/generate-article", map[string]interface{}{
		"topic": "Topic X",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateArticleUpstreamFailure(t *testing.T) {
	controller, _, settingRepo, ai := setupArticleController()

	settingRepo.On("GetByKeys", mock.Anything).Return(map[string]string{
		"ai.apiKey": `"settings-key"`,
	}, nil)
	ai.On("GenerateArticle", mock.Anything, mock.Anything, "settings-key").
		Return(nil, &mistral.UpstreamError{Status: 500, Body: "boom"})

	router := setupTestRouter()
	router.POST("/ai/generate-article", controller.GenerateArticle)

	w := performRequest(router, http.MethodPost, "/ai/generate-article", map[string]interface{}{
		"topic": "Topic X",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRegenerateArticleKeepsOriginalPrompt(t *testing.T) {
	controller, articleRepo, settingRepo, ai := setupArticleController()

	articleRepo.On("FindByID", uint(3)).Return(&models.Article{
		Title:    "Old title",
		Language: "en",
		AIPrompt: "Topic: Old topic",
	}, nil)
	settingRepo.On("GetByKeys", mock.Anything).Return(map[string]string{
		"ai.apiKey": `"settings-key"`,
	}, nil)
	ai.On("GenerateArticle", mock.Anything, mock.MatchedBy(func(params mistral.GenerateArticleParams) bool {
		return params.Topic == "Old title"
	}), "settings-key").
		Return(&mistral.GeneratedArticle{Title: "New title", Content: "New body", Excerpt: "New summary"}, nil)
	ai.On("Model").Return("mistral-large-latest")
	articleRepo.On("Update", mock.MatchedBy(func(article *models.Article) bool {
		return article.Title == "New title" &&
			article.AIPrompt == "Topic: Old topic" &&
			article.AIModel == "mistral-large-latest"
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/articles/:id/regenerate", controller.RegenerateArticle)

	w := performRequest(router, http.MethodPost, "/articles/3/regenerate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	articleRepo.AssertExpectations(t)
}
