package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"theme.primaryColor", "theme"},
		{"company.name", "company"},
		{"ai.apiKey", "ai"},
		{"homepage.config", "homepage"},
		{"seo.globalKeywords", "seo"},
		{"nodot", "general"},
		{".leadingdot", "general"},
		{"a.b.c", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryForKey(tt.key))
		})
	}
}
