package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/christophe77/NovaBlog/internal/models"
	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/services"
	"github.com/christophe77/NovaBlog/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// setupMarkerKeys must all exist, alongside an admin user, for the
// installation to count as configured.
var setupMarkerKeys = []string{"company.name", "language.default"}

type SetupController struct {
	userRepo    repository.UserRepository
	settingRepo repository.SettingRepository
	scheduler   *services.Scheduler
}

func NewSetupController(userRepo repository.UserRepository, settingRepo repository.SettingRepository, scheduler *services.Scheduler) *SetupController {
	return &SetupController{userRepo: userRepo, settingRepo: settingRepo, scheduler: scheduler}
}

// IsSetupComplete reports whether the first-run setup has been done:
// an admin user exists and the marker settings are present.
func IsSetupComplete(userRepo repository.UserRepository, settingRepo repository.SettingRepository) bool {
	adminCount, err := userRepo.CountByRole(models.RoleAdmin)
	if err != nil {
		log.Printf("Error checking setup status: %v", err)
		return false
	}

	settingsCount, err := settingRepo.CountByKeys(setupMarkerKeys)
	if err != nil {
		log.Printf("Error checking setup status: %v", err)
		return false
	}

	return adminCount > 0 && settingsCount >= int64(len(setupMarkerKeys))
}

// Status godoc
// @Summary Check setup status
// @Tags setup
// @Produce json
// @Success 200 {object} map[string]interface{} "Setup status retrieved successfully"
// @Router /api/setup/status [get]
func (sc *SetupController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Setup status retrieved successfully",
		"data": gin.H{
			"setupComplete": IsSetupComplete(sc.userRepo, sc.settingRepo),
		},
	})
}

type setupRequest struct {
	Language string `json:"language" binding:"required,len=2"`
	Company  struct {
		Name     string `json:"name" binding:"required"`
		Siren    string `json:"siren"`
		Address  string `json:"address"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Logo     string `json:"logo"`
		Activity string `json:"activity"`
		Location string `json:"location"`
	} `json:"company" binding:"required"`
	SEO struct {
		GlobalKeywords  []string `json:"globalKeywords"`
		MetaDescription string   `json:"metaDescription"`
		SiteTitle       string   `json:"siteTitle"`
	} `json:"seo"`
	Theme struct {
		PrimaryColor    string `json:"primaryColor"`
		SecondaryColor  string `json:"secondaryColor"`
		BackgroundColor string `json:"backgroundColor"`
		TextColor       string `json:"textColor"`
		AccentColor     string `json:"accentColor"`
	} `json:"theme"`
	AI struct {
		Model  string `json:"model"`
		Tone   string `json:"tone"`
		Length string `json:"length" binding:"omitempty,oneof=short medium long"`
	} `json:"ai"`
	Admin struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	} `json:"admin" binding:"required"`
}

// Complete godoc
// @Summary Complete the first-run setup
// @Description Create the initial settings and the admin account, then start the scheduler
// @Tags setup
// @Accept json
// @Produce json
// @Param request body setupRequest true "Setup data"
// @Success 200 {object} map[string]interface{} "Setup completed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid setup data or setup already completed"
// @Failure 500 {object} map[string]interface{} "Failed to complete setup"
// @Router /api/setup/complete [post]
func (sc *SetupController) Complete(c *gin.Context) {
	if IsSetupComplete(sc.userRepo, sc.settingRepo) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Setup already completed",
			"error":   "The installation has already been configured",
		})
		return
	}

	var req setupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid setup data",
			"error":   err.Error(),
		})
		return
	}

	settings := utils.DefaultSettings()
	override := func(key string, value interface{}) {
		valueJSON, _ := json.Marshal(value)
		settings[key] = string(valueJSON)
	}

	override("language.default", req.Language)
	override("company.name", req.Company.Name)
	override("company.siren", req.Company.Siren)
	override("company.address", req.Company.Address)
	override("company.email", req.Company.Email)
	override("company.phone", req.Company.Phone)
	override("company.logo", req.Company.Logo)
	override("company.activity", req.Company.Activity)
	override("company.location", req.Company.Location)

	if req.SEO.GlobalKeywords != nil {
		override("seo.globalKeywords", req.SEO.GlobalKeywords)
	}
	if req.SEO.MetaDescription != "" {
		override("seo.metaDescription", req.SEO.MetaDescription)
	}
	siteTitle := req.SEO.SiteTitle
	if siteTitle == "" {
		siteTitle = req.Company.Name
	}
	override("seo.siteTitle", siteTitle)

	if req.Theme.PrimaryColor != "" {
		override("theme.primaryColor", req.Theme.PrimaryColor)
	}
	if req.Theme.SecondaryColor != "" {
		override("theme.secondaryColor", req.Theme.SecondaryColor)
	}
	if req.Theme.BackgroundColor != "" {
		override("theme.backgroundColor", req.Theme.BackgroundColor)
	}
	if req.Theme.TextColor != "" {
		override("theme.textColor", req.Theme.TextColor)
	}
	if req.Theme.AccentColor != "" {
		override("theme.accentColor", req.Theme.AccentColor)
	}

	if req.AI.Model != "" {
		override("ai.model", req.AI.Model)
	}
	if req.AI.Tone != "" {
		override("ai.tone", req.AI.Tone)
	}
	if req.AI.Length != "" {
		override("ai.length", req.AI.Length)
	}

	override("setup.completed", true)

	if err := sc.settingRepo.UpsertMany(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to complete setup",
			"error":   err.Error(),
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to complete setup",
			"error":   err.Error(),
		})
		return
	}

	admin := &models.User{
		Email:        req.Admin.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := sc.userRepo.Create(admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create admin user",
			"error":   err.Error(),
		})
		return
	}

	// The scheduler stays idle until the installation is configured.
	sc.scheduler.Start()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Setup completed successfully",
		"data":    nil,
	})
}
