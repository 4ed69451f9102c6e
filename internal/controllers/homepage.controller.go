package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/services"
	"github.com/gin-gonic/gin"
)

type HomepageController struct {
	settingRepo repository.SettingRepository
	ai          AIClient
}

func NewHomepageController(settingRepo repository.SettingRepository, ai AIClient) *HomepageController {
	return &HomepageController{settingRepo: settingRepo, ai: ai}
}

// GetConfig godoc
// @Summary Get the homepage configuration
// @Tags admin-homepage
// @Produce json
// @Success 200 {object} map[string]interface{} "Homepage config retrieved successfully"
// @Router /api/admin/homepage/config [get]
func (hc *HomepageController) GetConfig(c *gin.Context) {
	config := loadHomepageConfig(hc.settingRepo)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Homepage config retrieved successfully",
		"data":    config,
	})
}

type updateHomepageRequest struct {
	Config map[string]interface{} `json:"config" binding:"required"`
}

// UpdateConfig godoc
// @Summary Update the homepage configuration
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Param request body updateHomepageRequest true "Homepage configuration"
// @Success 200 {object} map[string]interface{} "Homepage config updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to update homepage config"
// @Router /api/admin/homepage/config [put]
func (hc *HomepageController) UpdateConfig(c *gin.Context) {
	var req updateHomepageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	configJSON, err := json.Marshal(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid homepage configuration",
			"error":   err.Error(),
		})
		return
	}

	if err := hc.settingRepo.Upsert("homepage.config", string(configJSON)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update homepage config",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Homepage config updated successfully",
		"data":    nil,
	})
}

type generateAltRequest struct {
	ImageURL    string `json:"imageUrl" binding:"required"`
	PageSection string `json:"pageSection"`
}

// GenerateAlt godoc
// @Summary Generate alt text for a homepage image
// @Description Produce accessibility alt text for an image, using company info and homepage content as context
// @Tags admin-homepage
// @Accept json
// @Produce json
// @Param request body generateAltRequest true "Image URL and optional page section"
// @Success 200 {object} map[string]interface{} "Alt text generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "AI service request failed"
// @Router /api/admin/homepage/generate-alt [post]
func (hc *HomepageController) GenerateAlt(c *gin.Context) {
	var req generateAltRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	cfg, err := services.LoadGenerationConfig(hc.settingRepo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load generation settings",
			"error":   err.Error(),
		})
		return
	}

	pageSection := req.PageSection
	if pageSection == "" {
		pageSection = "Hero carousel - Homepage"
	}

	alt, err := hc.ai.GenerateImageAlt(c.Request.Context(), req.ImageURL, mistral.AltTextContext{
		CompanyName:     cfg.Company.Name,
		CompanyActivity: cfg.Company.Activity,
		PageSection:     pageSection,
		ExistingContent: homepageSectionText(hc.settingRepo, 500),
	}, cfg.APIKey)
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Alt text generated successfully",
		"data":    gin.H{"alt": alt},
	})
}

// GenerateSEO godoc
// @Summary Generate SEO metadata for the homepage
// @Description Produce an SEO title/description pair from company info, keywords and homepage content
// @Tags admin-homepage
// @Produce json
// @Success 200 {object} map[string]interface{} "SEO metadata generated successfully"
// @Failure 502 {object} map[string]interface{} "AI service request failed"
// @Router /api/admin/homepage/generate-seo [post]
func (hc *HomepageController) GenerateSEO(c *gin.Context) {
	cfg, err := services.LoadGenerationConfig(hc.settingRepo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load generation settings",
			"error":   err.Error(),
		})
		return
	}

	seo, err := hc.ai.GenerateSEO(c.Request.Context(), "homepage", mistral.SEOContext{
		CompanyName:     cfg.Company.Name,
		CompanyActivity: cfg.Company.Activity,
		CompanyLocation: cfg.Company.Location,
		PageContent:     homepageSectionText(hc.settingRepo, 1000),
		GlobalKeywords:  cfg.GlobalKeywords,
	}, cfg.APIKey)
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SEO metadata generated successfully",
		"data":    gin.H{"seo": seo},
	})
}

// homepageSectionText concatenates the content of the configured
// homepage sections, truncated to maxLen, for use as prompt context.
func homepageSectionText(settings repository.SettingRepository, maxLen int) string {
	config := loadHomepageConfig(settings)

	sections, ok := config["sections"].([]interface{})
	if !ok {
		return ""
	}

	var parts []string
	for _, s := range sections {
		section, ok := s.(map[string]interface{})
		if !ok {
			continue
		}
		if content, ok := section["content"].(string); ok && content != "" {
			parts = append(parts, content)
		}
	}

	text := strings.Join(parts, " ")
	if len(text) > maxLen {
		text = text[:maxLen]
	}
	return text
}
