package mistral

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type CompanyInfo struct {
	Name     string
	Activity string
	Location string
}

type GenerateArticleParams struct {
	Topic          string
	Keywords       []string
	Language       string
	Tone           string
	Length         string
	Model          string
	Company        CompanyInfo
	GlobalKeywords []string
}

type GeneratedArticle struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	Excerpt        string `json:"excerpt"`
	SEOTitle       string `json:"seoTitle,omitempty"`
	SEODescription string `json:"seoDescription,omitempty"`
}

type AltTextContext struct {
	CompanyName     string
	CompanyActivity string
	PageSection     string
	ExistingContent string
}

type SEOContext struct {
	CompanyName     string
	CompanyActivity string
	CompanyLocation string
	PageContent     string
	SectionTitle    string
	GlobalKeywords  []string
}

type SEOMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var lengthWords = map[string]string{
	"short":  "500-800 words",
	"medium": "1000-1500 words",
	"long":   "2000-2500 words",
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func companyContext(company CompanyInfo) string {
	if company == (CompanyInfo{}) {
		return ""
	}
	return fmt.Sprintf(`
Company information:
- Name: %s
- Activity: %s
- Location: %s
`, orUnspecified(company.Name), orUnspecified(company.Activity), orUnspecified(company.Location))
}

// GenerateArticle asks the model for a structured blog article on the
// given topic. If the response cannot be parsed as JSON, the raw text
// becomes the content and the topic becomes the title.
func (c *Client) GenerateArticle(ctx context.Context, params GenerateArticleParams, apiKey string) (*GeneratedArticle, error) {
	if params.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	tone := params.Tone
	if tone == "" {
		tone = "informative and accessible"
	}

	length, ok := lengthWords[params.Length]
	if !ok {
		length = lengthWords["medium"]
	}

	model := params.Model
	if model == "" {
		model = c.model
	}

	keywordsList := append(append([]string{}, params.Keywords...), params.GlobalKeywords...)
	keywords := strings.Join(keywordsList, ", ")
	if keywords == "" {
		keywords = "none"
	}

	prompt := fmt.Sprintf(`You are an expert web content writer.
%s
Task: Write a complete blog article on the following subject: "%s"

Constraints:
- Language: %s
- Tone: %s
- Length: %s
- Naturally integrate the following keywords: %s
- Structure: introduction, 3-4 main sections with subtitles, conclusion
- Style: professional, engaging, with concrete examples

Response format (strict JSON):
{
  "title": "Article title",
  "content": "Full content in markdown with ## for section headings",
  "excerpt": "Summary in 2-3 sentences",
  "seoTitle": "Optimized SEO title (max 60 characters)",
  "seoDescription": "SEO description (max 160 characters)"
}`, companyContext(params.Company), params.Topic, params.Language, tone, length, keywords)

	messages := []ChatMessage{
		{
			Role:    "system",
			Content: "You are an expert web content writing assistant. You always answer with valid JSON and no additional text.",
		},
		{
			Role:    "user",
			Content: prompt,
		},
	}

	response, err := c.chatCompletion(ctx, model, messages, 0.7, 2000, apiKey)
	if err != nil {
		return nil, err
	}

	jsonStr, found := extractJSON(response)
	if found {
		var parsed GeneratedArticle
		if err := json.Unmarshal([]byte(jsonStr), &parsed); err == nil {
			if parsed.Title == "" {
				parsed.Title = params.Topic
			}
			if parsed.Content == "" {
				parsed.Content = response
			}
			if parsed.Excerpt == "" {
				parsed.Excerpt = generateExcerpt(parsed.Content, 200)
			}
			return &parsed, nil
		}
	}

	// Fallback when the model did not return parseable JSON.
	return &GeneratedArticle{
		Title:   params.Topic,
		Content: response,
		Excerpt: generateExcerpt(response, 200),
	}, nil
}

// GenerateImageAlt produces accessibility alt text for an image using
// the smaller model variant. The response is a single short string,
// not JSON.
func (c *Client) GenerateImageAlt(ctx context.Context, imageURL string, altCtx AltTextContext, apiKey string) (string, error) {
	if imageURL == "" {
		return "", fmt.Errorf("imageUrl is required")
	}

	var contextInfo strings.Builder
	if altCtx != (AltTextContext{}) {
		fmt.Fprintf(&contextInfo, `
Company context:
- Name: %s
- Activity: %s
- Page section: %s
`, orUnspecified(altCtx.CompanyName), orUnspecified(altCtx.CompanyActivity), orUnspecified(altCtx.PageSection))
		if altCtx.ExistingContent != "" {
			fmt.Fprintf(&contextInfo, "- Existing page content: %s\n", truncate(altCtx.ExistingContent, 500))
		}
	}

	prompt := fmt.Sprintf(`You are an expert in web accessibility and SEO.
%s
Task: Generate descriptive, SEO-optimized alt text for the image at this URL: %s

Constraints:
- Maximum 125 characters
- Precisely describes the content and context of the image
- Includes relevant keywords where appropriate
- Accessible for screen readers
- No trailing punctuation

Answer only with the alt text, without quotes or additional text.`, contextInfo.String(), imageURL)

	response, err := c.chatCompletion(ctx, c.smallModel, []ChatMessage{{Role: "user", Content: prompt}}, 0.3, 150, apiKey)
	if err != nil {
		return "", err
	}

	return strings.Trim(strings.TrimSpace(response), `"'`), nil
}

// GenerateSEO produces an SEO title/description pair using the smaller
// model variant, with the same JSON-extraction strategy as article
// generation.
func (c *Client) GenerateSEO(ctx context.Context, pageType string, seoCtx SEOContext, apiKey string) (*SEOMetadata, error) {
	target := "the homepage"
	if pageType != "homepage" {
		target = fmt.Sprintf("the %q section", orUnspecified(seoCtx.SectionTitle))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert in SEO and web ranking.

Company information:
- Name: %s
- Activity: %s
- Location: %s
`, orUnspecified(seoCtx.CompanyName), orUnspecified(seoCtx.CompanyActivity), orUnspecified(seoCtx.CompanyLocation))

	if keywords := strings.Join(seoCtx.GlobalKeywords, ", "); keywords != "" {
		fmt.Fprintf(&b, "\nKeywords to integrate: %s\n", keywords)
	}
	if seoCtx.PageContent != "" {
		fmt.Fprintf(&b, "\nPage content:\n%s\n", truncate(seoCtx.PageContent, 1000))
	}

	fmt.Fprintf(&b, `
Task: Generate optimized SEO metadata for %s.

Response format (strict JSON):
{
  "title": "Optimized SEO title (max 60 characters, includes the company name and main keywords)",
  "description": "Optimized SEO description (max 160 characters, engaging, integrates keywords naturally)"
}

Constraints:
- Title: ideally 50-60 characters, includes the company name
- Description: 150-160 characters, engaging and informative
- Integrate the provided keywords naturally
- Optimized for local search when a location is provided`, target)

	messages := []ChatMessage{
		{
			Role:    "system",
			Content: "You are an expert SEO assistant. You always answer with valid JSON and no additional text.",
		},
		{
			Role:    "user",
			Content: b.String(),
		},
	}

	response, err := c.chatCompletion(ctx, c.smallModel, messages, 0.3, 300, apiKey)
	if err != nil {
		return nil, err
	}

	jsonStr, found := extractJSON(response)
	if found {
		var parsed SEOMetadata
		if err := json.Unmarshal([]byte(jsonStr), &parsed); err == nil {
			return &parsed, nil
		}
	}

	// Fallback: take the first two non-empty lines.
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	meta := &SEOMetadata{}
	if len(lines) > 0 {
		meta.Title = truncate(lines[0], 60)
	}
	if len(lines) > 1 {
		meta.Description = truncate(lines[1], 160)
	}
	return meta, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
