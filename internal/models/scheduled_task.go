package models

import "time"

const (
	TaskTypeArticleGeneration = "article_generation"

	TaskStatusCompleted = "COMPLETED"
	TaskStatusFailed    = "FAILED"
)

// ScheduledTask is one row of the append-only task log, one per
// scheduler run. The latest COMPLETED row doubles as the clock
// reference for the generation interval check.
type ScheduledTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Type        string     `gorm:"index" json:"type" example:"article_generation"`
	Status      string     `json:"status" example:"COMPLETED"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       *string    `json:"error,omitempty"`
}
