package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/christophe77/NovaBlog/internal/models"
	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/services"
	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	repo        repository.ArticleRepository
	settingRepo repository.SettingRepository
	ai          AIClient
}

func NewArticleController(repo repository.ArticleRepository, settingRepo repository.SettingRepository, ai AIClient) *ArticleController {
	return &ArticleController{repo: repo, settingRepo: settingRepo, ai: ai}
}

type articleRequest struct {
	Title          string     `json:"title" binding:"required"`
	Content        string     `json:"content" binding:"required"`
	Excerpt        string     `json:"excerpt"`
	Image          string     `json:"image"`
	Language       string     `json:"language"`
	Status         string     `json:"status"`
	SEOTitle       string     `json:"seoTitle"`
	SEODescription string     `json:"seoDescription"`
	Keywords       []string   `json:"keywords"`
	PublishedAt    *time.Time `json:"publishedAt"`
}

func (req *articleRequest) apply(article *models.Article) {
	article.Title = req.Title
	article.Content = req.Content
	article.Excerpt = req.Excerpt
	article.Image = req.Image
	if req.Language != "" {
		article.Language = req.Language
	}
	if req.Status != "" {
		article.Status = req.Status
	}
	article.SEOTitle = req.SEOTitle
	article.SEODescription = req.SEODescription
	if req.Keywords != nil {
		keywordsJSON, _ := json.Marshal(req.Keywords)
		article.Keywords = string(keywordsJSON)
	}
	if req.PublishedAt != nil {
		article.PublishedAt = req.PublishedAt
	}
}

// GetAllArticles godoc
// @Summary List articles
// @Description Retrieve articles with optional status filter and pagination
// @Tags admin-articles
// @Produce json
// @Param status query string false "Filter by status (DRAFT, PUBLISHED, SCHEDULED or all)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /api/admin/articles [get]
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	articles, total, err := ac.repo.FindAll(status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data": gin.H{
			"articles":   articles,
			"pagination": paginationMeta(page, limit, total),
		},
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Tags admin-articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/admin/articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// CreateArticle godoc
// @Summary Create an article
// @Description Create a manually authored article; the slug is derived from the title
// @Tags admin-articles
// @Accept json
// @Produce json
// @Param article body articleRequest true "Article data"
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create article"
// @Router /api/admin/articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article := models.Article{
		Language: services.DefaultLanguage,
		Status:   models.ArticleStatusDraft,
		Source:   models.ArticleSourceManual,
	}
	req.apply(&article)

	if article.Status == models.ArticleStatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := ac.repo.Create(&article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Update an article
// @Tags admin-articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body articleRequest true "Article data"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 500 {object} map[string]interface{} "Failed to update article"
// @Router /api/admin/articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	req.apply(article)

	if err := ac.repo.Update(article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    article,
	})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Tags admin-articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/admin/articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := ac.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}

// PublishArticle godoc
// @Summary Publish an article
// @Description Transition an article to PUBLISHED; the published-at timestamp is set once and kept on later edits
// @Tags admin-articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article published successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/admin/articles/{id}/publish [post]
func (ac *ArticleController) PublishArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := ac.repo.Publish(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article published successfully",
		"data":    article,
	})
}

// RegenerateArticle godoc
// @Summary Regenerate an article with AI
// @Description Rewrite an existing article using its title as the topic, keeping slug and status
// @Tags admin-articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article regenerated successfully"
// @Failure 400 {object} map[string]interface{} "AI service is not configured"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 502 {object} map[string]interface{} "AI service request failed"
// @Router /api/admin/articles/{id}/regenerate [post]
func (ac *ArticleController) RegenerateArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	cfg, err := services.LoadGenerationConfig(ac.settingRepo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load generation settings",
			"error":   err.Error(),
		})
		return
	}

	var keywords []string
	if article.Keywords != "" {
		_ = json.Unmarshal([]byte(article.Keywords), &keywords)
	}

	generated, err := ac.ai.GenerateArticle(c.Request.Context(), mistral.GenerateArticleParams{
		Topic:          article.Title,
		Keywords:       keywords,
		Language:       article.Language,
		Tone:           cfg.Tone,
		Length:         cfg.Length,
		Model:          cfg.Model,
		Company:        cfg.Company,
		GlobalKeywords: cfg.GlobalKeywords,
	}, cfg.APIKey)
	if err != nil {
		respondAIError(c, err)
		return
	}

	if article.AIPrompt == "" {
		article.AIPrompt = "Regenerate: " + article.Title
	}
	article.Title = generated.Title
	article.Content = generated.Content
	article.Excerpt = generated.Excerpt
	article.SEOTitle = generated.SEOTitle
	article.SEODescription = generated.SEODescription
	article.AIModel = ac.ai.Model()

	if err := ac.repo.Update(article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article regenerated successfully",
		"data":    article,
	})
}

type generateArticleRequest struct {
	Topic    string   `json:"topic" binding:"required"`
	Keywords []string `json:"keywords"`
	Language string   `json:"language"`
}

// GenerateArticle godoc
// @Summary Generate article content with AI
// @Description Generate a structured article draft from a topic; nothing is persisted
// @Tags admin-ai
// @Accept json
// @Produce json
// @Param request body generateArticleRequest true "Generation parameters"
// @Success 200 {object} map[string]interface{} "Article generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "AI service request failed"
// @Router /api/admin/ai/generate-article [post]
func (ac *ArticleController) GenerateArticle(c *gin.Context) {
	var req generateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	cfg, err := services.LoadGenerationConfig(ac.settingRepo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load generation settings",
			"error":   err.Error(),
		})
		return
	}

	language := req.Language
	if language == "" {
		language = cfg.Language
	}

	generated, err := ac.ai.GenerateArticle(c.Request.Context(), mistral.GenerateArticleParams{
		Topic:          req.Topic,
		Keywords:       req.Keywords,
		Language:       language,
		Tone:           cfg.Tone,
		Length:         cfg.Length,
		Model:          cfg.Model,
		Company:        cfg.Company,
		GlobalKeywords: cfg.GlobalKeywords,
	}, cfg.APIKey)
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article generated successfully",
		"data":    generated,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid article ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func paginationMeta(page, limit int, total int64) gin.H {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return gin.H{
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": totalPages,
	}
}
