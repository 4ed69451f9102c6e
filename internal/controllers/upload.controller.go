package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/gin-gonic/gin"
)

const maxUploadSize = 5 << 20 // 5MB

type UploadController struct {
	settingRepo repository.SettingRepository
	uploadsDir  string
}

func NewUploadController(settingRepo repository.SettingRepository, uploadsDir string) *UploadController {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Printf("Failed to create uploads directory %s: %v", uploadsDir, err)
	}
	return &UploadController{settingRepo: settingRepo, uploadsDir: uploadsDir}
}

// UploadArticleImage godoc
// @Summary Upload an article image
// @Tags admin-uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (max 5MB)"
// @Success 200 {object} map[string]interface{} "File uploaded successfully"
// @Failure 400 {object} map[string]interface{} "No file uploaded or invalid file"
// @Router /api/admin/upload/article-image [post]
func (uc *UploadController) UploadArticleImage(c *gin.Context) {
	url, ok := uc.saveUploadedFile(c, "image", "article-image")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "File uploaded successfully",
		"data":    gin.H{"url": url},
	})
}

// UploadHomepageImage godoc
// @Summary Upload a homepage carousel image
// @Tags admin-uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (max 5MB)"
// @Success 200 {object} map[string]interface{} "File uploaded successfully"
// @Failure 400 {object} map[string]interface{} "No file uploaded or invalid file"
// @Router /api/admin/upload/homepage-image [post]
func (uc *UploadController) UploadHomepageImage(c *gin.Context) {
	url, ok := uc.saveUploadedFile(c, "image", "homepage-image")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "File uploaded successfully",
		"data":    gin.H{"url": url},
	})
}

// UploadLogo godoc
// @Summary Upload the company logo
// @Description Store the logo, update the company.logo setting and remove the previous local file
// @Tags admin-uploads
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo file (max 5MB)"
// @Success 200 {object} map[string]interface{} "File uploaded successfully"
// @Failure 400 {object} map[string]interface{} "No file uploaded or invalid file"
// @Failure 500 {object} map[string]interface{} "Failed to update logo setting"
// @Router /api/admin/upload/logo [post]
func (uc *UploadController) UploadLogo(c *gin.Context) {
	oldLogo := ""
	if raw, ok, err := uc.settingRepo.GetValue("company.logo"); err == nil && ok {
		_ = json.Unmarshal([]byte(raw), &oldLogo)
	}

	url, ok := uc.saveUploadedFile(c, "logo", "logo")
	if !ok {
		return
	}

	urlJSON, _ := json.Marshal(url)
	if err := uc.settingRepo.Upsert("company.logo", string(urlJSON)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update logo setting",
			"error":   err.Error(),
		})
		return
	}

	// Remove the previous logo, but only files we manage ourselves.
	if oldLogo != "" && oldLogo != url && strings.HasPrefix(oldLogo, "/uploads/") {
		oldPath := filepath.Join(uc.uploadsDir, filepath.Base(oldLogo))
		if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove old logo %s: %v", oldPath, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "File uploaded successfully",
		"data":    gin.H{"url": url},
	})
}

// saveUploadedFile validates and stores an uploaded image, responding
// with an error itself when validation fails. It returns the public
// URL of the stored file.
func (uc *UploadController) saveUploadedFile(c *gin.Context, field, prefix string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file uploaded",
			"error":   err.Error(),
		})
		return "", false
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File is too large",
			"error":   "Maximum upload size is 5MB",
		})
		return "", false
	}

	if !isImageUpload(file) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid file type",
			"error":   "Only image files are allowed",
		})
		return "", false
	}

	filename := fmt.Sprintf("%s-%d-%d%s", prefix, time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uc.uploadsDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Upload failed",
			"error":   err.Error(),
		})
		return "", false
	}

	return "/uploads/" + filename, true
}

func isImageUpload(file *multipart.FileHeader) bool {
	contentType := file.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "image/")
}
