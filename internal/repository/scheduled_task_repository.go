package repository

import (
	"github.com/christophe77/NovaBlog/internal/models"
	"gorm.io/gorm"
)

// ScheduledTaskRepository is the append-only log of scheduler runs.
type ScheduledTaskRepository interface {
	Create(task *models.ScheduledTask) error
	FindLatest(taskType string) (*models.ScheduledTask, error)
	FindLatestCompleted(taskType string) (*models.ScheduledTask, error)
}

type scheduledTaskRepository struct {
	db *gorm.DB
}

func NewScheduledTaskRepository(db *gorm.DB) ScheduledTaskRepository {
	return &scheduledTaskRepository{db: db}
}

func (r *scheduledTaskRepository) Create(task *models.ScheduledTask) error {
	return r.db.Create(task).Error
}

func (r *scheduledTaskRepository) FindLatest(taskType string) (*models.ScheduledTask, error) {
	var task models.ScheduledTask
	err := r.db.Where("type = ?", taskType).
		Order("created_at desc").
		First(&task).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *scheduledTaskRepository) FindLatestCompleted(taskType string) (*models.ScheduledTask, error) {
	var task models.ScheduledTask
	err := r.db.Where("type = ? AND status = ?", taskType, models.TaskStatusCompleted).
		Order("completed_at desc").
		First(&task).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}
