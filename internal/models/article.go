package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ArticleStatusDraft     = "DRAFT"
	ArticleStatusPublished = "PUBLISHED"
	ArticleStatusScheduled = "SCHEDULED"

	ArticleSourceManual      = "MANUAL"
	ArticleSourceAIGenerated = "AI_GENERATED"
)

type Article struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Slug           string         `gorm:"uniqueIndex" json:"slug" example:"sample-article-title"`
	Title          string         `json:"title" example:"Sample Article Title"`
	Content        string         `json:"content"`
	Excerpt        string         `json:"excerpt"`
	Image          string         `json:"image,omitempty"`
	Language       string         `gorm:"size:2;default:en" json:"language" example:"en"`
	Status         string         `gorm:"default:DRAFT;index" json:"status" example:"DRAFT"`
	SEOTitle       string         `json:"seo_title,omitempty"`
	SEODescription string         `json:"seo_description,omitempty"`
	// Keywords is a JSON-encoded array of strings.
	Keywords    string     `json:"keywords,omitempty"`
	Source      string     `gorm:"default:MANUAL;index" json:"source" example:"MANUAL"`
	AIPrompt    string     `json:"ai_prompt,omitempty"`
	AIModel     string     `json:"ai_model,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
