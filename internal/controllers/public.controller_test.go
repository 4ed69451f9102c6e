package controllers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/christophe77/NovaBlog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetPublishedArticles(t *testing.T) {
	now := time.Now()
	articleRepo := new(MockArticleRepository)
	articleRepo.On("FindPublished", "", 1, 10).Return([]models.Article{
		{Slug: "first-post", Title: "First post", Status: models.ArticleStatusPublished, PublishedAt: &now},
	}, int64(1), nil)

	controller := NewPublicController(articleRepo, new(MockSettingRepository))
	router := setupTestRouter()
	router.GET("/articles", controller.GetPublishedArticles)

	w := performRequest(router, http.MethodGet, "/articles", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})

	articles := data["articles"].([]interface{})
	assert.Len(t, articles, 1)

	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(1), pagination["totalPages"])
}

func TestGetPublishedArticlesPassesFilters(t *testing.T) {
	articleRepo := new(MockArticleRepository)
	articleRepo.On("FindPublished", "fr", 2, 5).Return([]models.Article{}, int64(12), nil)

	controller := NewPublicController(articleRepo, new(MockSettingRepository))
	router := setupTestRouter()
	router.GET("/articles", controller.GetPublishedArticles)

	w := performRequest(router, http.MethodGet, "/articles?page=2&limit=5&language=fr", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	pagination := response["data"].(map[string]interface{})["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["totalPages"])
	articleRepo.AssertExpectations(t)
}

func TestGetArticleBySlugNotFound(t *testing.T) {
	articleRepo := new(MockArticleRepository)
	articleRepo.On("FindPublishedBySlug", "missing").Return(nil, errors.New("record not found"))

	controller := NewPublicController(articleRepo, new(MockSettingRepository))
	router := setupTestRouter()
	router.GET("/articles/:slug", controller.GetArticleBySlug)

	w := performRequest(router, http.MethodGet, "/articles/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPublicSettingsExcludesPrivateCategories(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	settingRepo.On("FindByCategories", publicSettingCategories).Return([]models.Setting{
		{Key: "company.name", Value: `"Acme"`, Category: "company"},
		{Key: "theme.primaryColor", Value: `"#2563eb"`, Category: "theme"},
	}, nil)

	controller := NewPublicController(new(MockArticleRepository), settingRepo)
	router := setupTestRouter()
	router.GET("/settings", controller.GetPublicSettings)

	w := performRequest(router, http.MethodGet, "/settings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Acme", data["company.name"])
	assert.NotContains(t, data, "ai.apiKey")
	assert.NotContains(t, publicSettingCategories, "ai")
}

func TestGetHomepageConfigReturnsDefaultWhenMissing(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	settingRepo.On("GetValue", "homepage.config").Return("", false, nil)

	controller := NewPublicController(new(MockArticleRepository), settingRepo)
	router := setupTestRouter()
	router.GET("/homepage/config", controller.GetHomepageConfig)

	w := performRequest(router, http.MethodGet, "/homepage/config", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	carousel := data["heroCarousel"].(map[string]interface{})
	assert.Equal(t, false, carousel["enabled"])
}

func TestGetHomepageConfigReturnsStoredValue(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	settingRepo.On("GetValue", "homepage.config").
		Return(`{"heroCarousel":{"enabled":true,"slides":[]},"sections":[]}`, true, nil)

	controller := NewPublicController(new(MockArticleRepository), settingRepo)
	router := setupTestRouter()
	router.GET("/homepage/config", controller.GetHomepageConfig)

	w := performRequest(router, http.MethodGet, "/homepage/config", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	carousel := data["heroCarousel"].(map[string]interface{})
	assert.Equal(t, true, carousel["enabled"])
}

func TestSendContactValidation(t *testing.T) {
	controller := NewPublicController(new(MockArticleRepository), new(MockSettingRepository))
	router := setupTestRouter()
	router.POST("/contact", controller.SendContact)

	// Missing message
	w := performRequest(router, http.MethodPost, "/contact", map[string]interface{}{
		"name":  "Alex",
		"email": "alex@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	w = performRequest(router, http.MethodPost, "/contact", map[string]interface{}{
		"name":    "Alex",
		"email":   "not-an-email",
		"message": "Hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
