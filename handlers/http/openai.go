package httpHandler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ImageGenService interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Download(ctx context.Context, imageURL string) ([]byte, error)
	CacheStats() map[string]interface{}
}

type OpenAIHandler struct {
	service ImageGenService
}

func NewOpenAIHandler(service ImageGenService) *OpenAIHandler {
	return &OpenAIHandler{
		service: service,
	}
}

type generateImageRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateImage handles POST /api/openai/generate-image
func (h *OpenAIHandler) GenerateImage(c *gin.Context) {
	var req generateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	imageURL, err := h.service.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"imageUrl": imageURL}})
}

// DownloadImage handles GET /api/openai/download-image. It proxies the
// remote image back as a PNG attachment named after the prompt.
func (h *OpenAIHandler) DownloadImage(c *gin.Context) {
	imageURL := c.Query("imageUrl")
	prompt := c.Query("prompt")

	if imageURL == "" || prompt == "" {
		c.String(http.StatusBadRequest, "Missing imageUrl or prompt.")
		return
	}

	data, err := h.service.Download(c.Request.Context(), imageURL)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to download image.")
		return
	}

	filename := strings.ToLower(strings.Join(strings.Fields(prompt), "_")) + ".png"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", data)
}

// CacheStats handles GET /api/openai/cache-stats
func (h *OpenAIHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.service.CacheStats(),
	})
}
