package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/christophe77/NovaBlog/internal/mistral"
	"github.com/gin-gonic/gin"
)

// AIClient is the slice of the text-generation client the controllers
// need. Satisfied by *mistral.Client.
type AIClient interface {
	GenerateArticle(ctx context.Context, params mistral.GenerateArticleParams, apiKey string) (*mistral.GeneratedArticle, error)
	GenerateImageAlt(ctx context.Context, imageURL string, altCtx mistral.AltTextContext, apiKey string) (string, error)
	GenerateSEO(ctx context.Context, pageType string, seoCtx mistral.SEOContext, apiKey string) (*mistral.SEOMetadata, error)
	Model() string
}

// respondAIError maps generation failures to HTTP statuses: a missing
// credential is a client-fixable configuration problem, an upstream
// rejection is a gateway failure.
func respondAIError(c *gin.Context, err error) {
	var confErr *mistral.ConfigurationError
	if errors.As(err, &confErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "AI service is not configured",
			"error":   confErr.Error(),
		})
		return
	}

	var upstreamErr *mistral.UpstreamError
	if errors.As(err, &upstreamErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "AI service request failed",
			"error":   upstreamErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Article generation failed",
		"error":   err.Error(),
	})
}
