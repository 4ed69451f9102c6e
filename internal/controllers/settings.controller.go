package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	repo repository.SettingRepository
}

func NewSettingsController(repo repository.SettingRepository) *SettingsController {
	return &SettingsController{repo: repo}
}

// GetSettings godoc
// @Summary Get settings grouped by category
// @Description Return all settings, or one category, as nested category/key objects with decoded values
// @Tags admin-settings
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} map[string]interface{} "Settings retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve settings"
// @Router /api/admin/settings [get]
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.repo.FindAll(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve settings",
			"error":   err.Error(),
		})
		return
	}

	grouped := make(map[string]map[string]interface{})
	for _, setting := range settings {
		if grouped[setting.Category] == nil {
			grouped[setting.Category] = make(map[string]interface{})
		}

		// Keys are stored fully qualified; the category prefix is
		// stripped for the response ("theme.primaryColor" -> "primaryColor").
		key := setting.Key
		if idx := strings.Index(key, "."); idx > 0 {
			key = key[idx+1:]
		}

		var value interface{}
		if err := json.Unmarshal([]byte(setting.Value), &value); err != nil {
			value = setting.Value
		}
		grouped[setting.Category][key] = value
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings retrieved successfully",
		"data":    grouped,
	})
}

type updateSettingsRequest struct {
	Settings map[string]interface{} `json:"settings" binding:"required"`
}

// UpdateSettings godoc
// @Summary Update settings
// @Description Upsert a batch of fully-qualified setting keys; values are stored JSON-encoded
// @Tags admin-settings
// @Accept json
// @Produce json
// @Param request body updateSettingsRequest true "Settings to upsert, keyed by full key"
// @Success 200 {object} map[string]interface{} "Settings updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to update settings"
// @Router /api/admin/settings [put]
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	encoded := make(map[string]string, len(req.Settings))
	for key, value := range req.Settings {
		valueJSON, err := json.Marshal(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid setting value",
				"error":   err.Error(),
			})
			return
		}
		encoded[key] = string(valueJSON)
	}

	if err := sc.repo.UpsertMany(encoded); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Settings updated successfully",
		"data":    nil,
	})
}
