package utils

import "encoding/json"

func jsonValue(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// DefaultSettings returns the initial key/value configuration applied
// by the seeder and by the setup flow. Values are JSON-encoded strings.
func DefaultSettings() map[string]string {
	return map[string]string{
		"company.name":     jsonValue("NovaBlog"),
		"company.activity": jsonValue("Publishing and content automation"),
		"company.location": jsonValue(""),
		"company.siren":    jsonValue(""),
		"company.address":  jsonValue(""),
		"company.email":    jsonValue(""),
		"company.phone":    jsonValue(""),
		"company.logo":     jsonValue(""),

		"theme.primaryColor":    jsonValue("#2563eb"),
		"theme.secondaryColor":  jsonValue("#10b981"),
		"theme.backgroundColor": jsonValue("#ffffff"),
		"theme.textColor":       jsonValue("#1f2937"),
		"theme.accentColor":     jsonValue("#3b82f6"),

		"seo.siteTitle":       jsonValue("NovaBlog"),
		"seo.metaDescription": jsonValue("Micro-blogging platform with AI-assisted publishing"),
		"seo.globalKeywords":  jsonValue([]string{}),

		"blog.topics":   jsonValue([]string{}),
		"blog.keywords": jsonValue([]string{}),

		"ai.model":               jsonValue("mistral-large-latest"),
		"ai.tone":                jsonValue("informative and accessible"),
		"ai.length":              jsonValue("medium"),
		"ai.articlesPerInterval": jsonValue(1),
		"ai.intervalDays":        jsonValue(3),

		"language.default": jsonValue("en"),

		"analytics.googleAnalyticsId": jsonValue(""),
	}
}

// DefaultHomepageConfig is returned when no homepage configuration has
// been saved yet, or when the stored value cannot be parsed.
func DefaultHomepageConfig() map[string]interface{} {
	return map[string]interface{}{
		"heroCarousel": map[string]interface{}{
			"enabled": false,
			"slides":  []interface{}{},
		},
		"sections": []interface{}{},
		"contact": map[string]interface{}{
			"enabled":        false,
			"title":          "Contact us",
			"description":    "",
			"emailLabel":     "Email",
			"nameLabel":      "Name",
			"subjectLabel":   "Subject",
			"messageLabel":   "Message",
			"submitLabel":    "Send",
			"successMessage": "Your message has been sent successfully. We will get back to you shortly.",
		},
		"seo": map[string]interface{}{
			"title":       "",
			"description": "",
		},
	}
}
