package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/christophe77/NovaBlog/internal/repository"
)

// GenerationConfig is the typed view of the generation-related
// settings. Defaults are merged here, once per load, instead of at
// each call site.
type GenerationConfig struct {
	Topics              []string
	Keywords            []string
	GlobalKeywords      []string
	Language            string
	Tone                string
	Length              string
	Model               string
	ArticlesPerInterval int
	IntervalDays        int
	Company             mistral.CompanyInfo
	APIKey              string
}

const (
	DefaultLanguage            = "en"
	DefaultTone                = "informative and accessible"
	DefaultLength              = "medium"
	DefaultArticlesPerInterval = 1
	DefaultIntervalDays        = 3
)

var generationSettingKeys = []string{
	"blog.topics",
	"blog.keywords",
	"seo.globalKeywords",
	"company.name",
	"company.activity",
	"company.location",
	"ai.model",
	"ai.tone",
	"ai.length",
	"ai.apiKey",
	"ai.articlesPerInterval",
	"ai.intervalDays",
	"language.default",
}

// LoadGenerationConfig reads the generation settings in one batch and
// decodes them with defaults applied. Missing keys are not errors.
func LoadGenerationConfig(settings repository.SettingRepository) (*GenerationConfig, error) {
	values, err := settings.GetByKeys(generationSettingKeys)
	if err != nil {
		return nil, err
	}

	cfg := &GenerationConfig{
		Topics:              decodeStringSlice(values["blog.topics"]),
		Keywords:            decodeStringSlice(values["blog.keywords"]),
		GlobalKeywords:      decodeStringSlice(values["seo.globalKeywords"]),
		Language:            decodeString(values["language.default"], DefaultLanguage),
		Tone:                decodeString(values["ai.tone"], DefaultTone),
		Length:              decodeString(values["ai.length"], DefaultLength),
		Model:               decodeString(values["ai.model"], ""),
		ArticlesPerInterval: decodeInt(values["ai.articlesPerInterval"], DefaultArticlesPerInterval),
		IntervalDays:        decodeInt(values["ai.intervalDays"], DefaultIntervalDays),
		Company: mistral.CompanyInfo{
			Name:     decodeString(values["company.name"], ""),
			Activity: decodeString(values["company.activity"], ""),
			Location: decodeString(values["company.location"], ""),
		},
		APIKey: decodeAPIKey(values["ai.apiKey"]),
	}

	if cfg.ArticlesPerInterval < 1 {
		cfg.ArticlesPerInterval = DefaultArticlesPerInterval
	}
	if cfg.IntervalDays < 1 {
		cfg.IntervalDays = DefaultIntervalDays
	}

	return cfg, nil
}

func decodeString(raw, def string) string {
	if raw == "" {
		return def
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return def
	}
	if s == "" {
		return def
	}
	return s
}

func decodeStringSlice(raw string) []string {
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}

func decodeInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	var n int
	if err := json.Unmarshal([]byte(raw), &n); err == nil {
		return n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return n
	}
	return def
}

// decodeAPIKey accepts either a JSON-encoded string or a raw value,
// matching how the key may have been stored by older setup flows.
func decodeAPIKey(raw string) string {
	if raw == "" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(raw)
}
