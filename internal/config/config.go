package config

import (
	"fmt"
	"os"
)

type Config struct {
	APIKey  string
	BaseURL string
	Debug   bool
}

func Load() (*Config, error) {
	apiKey := os.Getenv("RELAY_API_KEY")
	if apiKey == "" {
		fmt.Println("RELAY_API_KEY environment variable is required")
		fmt.Println("You can get your API key from the Relay console under Settings > API Keys")
		return nil, fmt.Errorf("RELAY_API_KEY environment variable is required")
	}

	baseURL := os.Getenv("RELAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.relay.dev/api/v1"
	}

	return &Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Debug:   os.Getenv("RELAY_DEBUG") == "true",
	}, nil
}
