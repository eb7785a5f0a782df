package confs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

// ServerPort returns the HTTP listen port, defaulting to 8080.
func ServerPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// OpenAIAPIKey returns the key for the image generation API. Empty
// means generation requests are rejected at call time.
func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
