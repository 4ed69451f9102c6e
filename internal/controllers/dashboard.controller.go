package controllers

import (
	"net/http"

	"github.com/christophe77/NovaBlog/internal/models"
	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	articleRepo repository.ArticleRepository
	taskRepo    repository.ScheduledTaskRepository
	scheduler   *services.Scheduler
}

func NewDashboardController(articleRepo repository.ArticleRepository, taskRepo repository.ScheduledTaskRepository, scheduler *services.Scheduler) *DashboardController {
	return &DashboardController{articleRepo: articleRepo, taskRepo: taskRepo, scheduler: scheduler}
}

// GetStats godoc
// @Summary Get dashboard statistics
// @Description Article counts by status and the outcome of the most recent generation run
// @Tags admin-dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Stats retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve stats"
// @Router /api/admin/dashboard/stats [get]
func (dc *DashboardController) GetStats(c *gin.Context) {
	total, err := dc.articleRepo.Count()
	if err != nil {
		respondStatsError(c, err)
		return
	}
	published, err := dc.articleRepo.CountByStatus(models.ArticleStatusPublished)
	if err != nil {
		respondStatsError(c, err)
		return
	}
	drafts, err := dc.articleRepo.CountByStatus(models.ArticleStatusDraft)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	lastTask, err := dc.taskRepo.FindLatest(models.TaskTypeArticleGeneration)
	if err != nil {
		respondStatsError(c, err)
		return
	}

	var lastGeneration gin.H
	if lastTask != nil {
		lastGeneration = gin.H{
			"status":      lastTask.Status,
			"completedAt": lastTask.CompletedAt,
			"error":       lastTask.Error,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data": gin.H{
			"totalArticles":     total,
			"publishedArticles": published,
			"draftArticles":     drafts,
			"lastGeneration":    lastGeneration,
		},
	})
}

// GenerateNow godoc
// @Summary Trigger article generation
// @Description Queue a generation batch outside the daily schedule; the outcome is visible in the task log
// @Tags admin-dashboard
// @Produce json
// @Success 202 {object} map[string]interface{} "Article generation started"
// @Failure 503 {object} map[string]interface{} "Scheduler is not running"
// @Router /api/admin/scheduler/generate-now [post]
func (dc *DashboardController) GenerateNow(c *gin.Context) {
	if err := dc.scheduler.TriggerNow(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Scheduler is not running",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Article generation started",
		"data":    nil,
	})
}

func respondStatsError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Failed to retrieve stats",
		"error":   err.Error(),
	})
}
