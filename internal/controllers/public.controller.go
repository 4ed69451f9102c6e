package controllers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/utils"
	"github.com/gin-gonic/gin"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// publicSettingCategories are the only setting categories exposed
// without authentication. The ai category in particular stays private
// because it contains the API credential.
var publicSettingCategories = []string{"company", "theme", "seo", "social", "language", "analytics"}

type PublicController struct {
	articleRepo repository.ArticleRepository
	settingRepo repository.SettingRepository
}

func NewPublicController(articleRepo repository.ArticleRepository, settingRepo repository.SettingRepository) *PublicController {
	return &PublicController{articleRepo: articleRepo, settingRepo: settingRepo}
}

// GetPublishedArticles godoc
// @Summary List published articles
// @Tags public
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param language query string false "Filter by language code"
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /api/public/articles [get]
func (pc *PublicController) GetPublishedArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	language := c.Query("language")

	articles, total, err := pc.articleRepo.FindPublished(language, page, limit)
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

// GetArticleBySlug godoc
// @Summary Get a published article by slug
// @Tags public
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/public/articles/{slug} [get]
func (pc *PublicController) GetArticleBySlug(c *gin.Context) {
	article, err := pc.articleRepo.FindPublishedBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No published article exists with the provided slug",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// GetPublicSettings godoc
// @Summary Get public settings
// @Description Flat key/value view of the settings safe to expose to the public site
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{} "Settings retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve settings"
// @Router /api/public/settings [get]
func (pc *PublicController) GetPublicSettings(c *gin.Context) {
	settings, err := pc.settingRepo.FindByCategories(publicSettingCategories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve settings",
			"error":   err.Error(),
		})
		return
	}

	values := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		var value interface{}
		if err := json.Unmarshal([]byte(setting.Value), &value); err != nil {
			value = setting.Value
		}
		values[setting.Key] = value
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings retrieved successfully",
		"data":    values,
	})
}

// GetHomepageConfig godoc
// @Summary Get the homepage configuration
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{} "Homepage config retrieved successfully"
// @Router /api/public/homepage/config [get]
func (pc *PublicController) GetHomepageConfig(c *gin.Context) {
	config := loadHomepageConfig(pc.settingRepo)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Homepage config retrieved successfully",
		"data":    config,
	})
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SendContact godoc
// @Summary Send a contact message
// @Description Forward a visitor message to the configured company email
// @Tags public
// @Accept json
// @Produce json
// @Param request body contactRequest true "Contact message"
// @Success 200 {object} map[string]interface{} "Message sent successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to send message"
// @Router /api/public/contact [post]
func (pc *PublicController) SendContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid email address",
			"error":   "The provided email address is not valid",
		})
		return
	}

	recipient := ""
	if raw, ok, err := pc.settingRepo.GetValue("company.email"); err == nil && ok {
		_ = json.Unmarshal([]byte(raw), &recipient)
	}
	mailConfig := utils.LoadMailConfig()
	if recipient == "" || mailConfig.SMTPHost == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send message. Please check email configuration.",
			"error":   "Contact email is not configured",
		})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "New contact message"
	}
	body := "From: " + req.Name + " <" + req.Email + ">\n\n" + req.Message

	if err := utils.SendEmail(mailConfig, recipient, subject, body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to send message. Please check email configuration.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message sent successfully",
		"data":    nil,
	})
}

// loadHomepageConfig returns the stored homepage configuration, or the
// default one when the setting is missing or unparseable.
func loadHomepageConfig(settings repository.SettingRepository) map[string]interface{} {
	raw, ok, err := settings.GetValue("homepage.config")
	if err != nil || !ok {
		return utils.DefaultHomepageConfig()
	}

	var config map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &config); err != nil {
		return utils.DefaultHomepageConfig()
	}
	return config
}
