package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"aestheti-qr-server/cache"
	"aestheti-qr-server/entities"
	"aestheti-qr-server/repositories"
)

const (
	promptCacheTTL     = 15 * time.Minute
	cachePurgeInterval = 5 * time.Minute
	maxDownloadBytes   = 20 << 20
)

type imageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// ImageGenService fronts the generation API with a prompt cache and
// records every fresh generation in the database.
type ImageGenService struct {
	generator  imageGenerator
	cache      *cache.PromptCache
	images     repositories.GeneratedImageRepository
	downloader *http.Client
	interval   time.Duration
}

func NewImageGenService(apiKey string, images repositories.GeneratedImageRepository) *ImageGenService {
	return &ImageGenService{
		generator:  NewOpenAIClient(apiKey),
		cache:      cache.NewPromptCache(promptCacheTTL),
		images:     images,
		downloader: &http.Client{Timeout: 30 * time.Second},
		interval:   cachePurgeInterval,
	}
}

// Start runs the background purge loop for expired cache entries.
func (s *ImageGenService) Start() {
	ticker := time.NewTicker(s.interval)
	go func() {
		for range ticker.C {
			if removed := s.cache.Purge(); removed > 0 {
				log.Printf("Purged %d expired prompt cache entries", removed)
			}
		}
	}()
}

// Generate returns an image URL for the prompt. Identical prompts
// within the cache TTL reuse the previous result without another API
// call or database row.
func (s *ImageGenService) Generate(ctx context.Context, prompt string) (string, error) {
	if imageURL, ok := s.cache.Get(prompt); ok {
		return imageURL, nil
	}

	imageURL, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}

	record := &entities.GeneratedImage{Prompt: prompt, ImageURL: imageURL}
	if err := s.images.Create(record); err != nil {
		return "", fmt.Errorf("failed to save generated image: %w", err)
	}

	s.cache.Put(prompt, imageURL)
	return imageURL, nil
}

// Download fetches a previously generated image so the browser can save
// it as an attachment instead of following a cross-origin URL.
func (s *ImageGenService) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL: %w", err)
	}

	resp, err := s.downloader.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

// CacheStats exposes prompt cache counters.
func (s *ImageGenService) CacheStats() map[string]interface{} {
	return s.cache.Stats()
}
