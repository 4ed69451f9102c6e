package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"diacritics stripped", "Écosystème numérique à Paris", "ecosysteme-numerique-a-paris"},
		{"punctuation collapses", "Go: the good, the bad & the ugly!", "go-the-good-the-bad-the-ugly"},
		{"numbers kept", "Top 10 tips for 2025", "top-10-tips-for-2025"},
		{"leading and trailing noise", "  --Hello--  ", "hello"},
		{"uppercase", "SHOUTING TITLE", "shouting-title"},
		{"only symbols", "!!! ???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.title))
		})
	}
}
