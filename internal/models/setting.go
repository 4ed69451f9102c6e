package models

import "time"

// Setting is a single configuration entry. Keys are dot-namespaced
// ("blog.topics", "ai.tone"); the prefix before the first dot is the
// category. Values are stored JSON-encoded and decoded by callers.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Key       string    `gorm:"uniqueIndex" json:"key" example:"blog.topics"`
	Value     string    `json:"value"`
	Category  string    `gorm:"index" json:"category" example:"blog"`
}
