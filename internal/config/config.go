// Package config provides configuration loading and validation for the
// careerfit engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// CollectionConfig names one vector index collection and its expected
// dimensionality.
type CollectionConfig struct {
	Name      string `json:"name" validate:"required"`
	Dimension int    `json:"dimension" validate:"gt=0"`
}

// EmbeddingConfig configures the embedding service client.
type EmbeddingConfig struct {
	EndpointURL    string `json:"endpoint_url" validate:"required,url"`
	APIKey         string `json:"api_key,omitempty"`
	Model          string `json:"model,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0"`
}

// VectorIndexConfig configures the vector index client.
type VectorIndexConfig struct {
	BaseURL             string             `json:"base_url" validate:"required,url"`
	APIKey              string             `json:"api_key,omitempty"`
	ActivityCollections []CollectionConfig `json:"activity_collections" validate:"min=1,dive"`
	JobCollection       CollectionConfig   `json:"job_collection"`
	TimeoutSeconds      int                `json:"timeout_seconds,omitempty" validate:"gte=0"`
}

// ExtractionConfig configures requirement extraction. When URL is set the
// HTTP extraction service is used; otherwise GeminiAPIKey enables the LLM
// provider; with neither, only the heuristic fallback runs.
type ExtractionConfig struct {
	URL          string `json:"url,omitempty" validate:"omitempty,url"`
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`
}

// Config is the full engine configuration, loadable from a JSON file with
// environment variable overrides.
type Config struct {
	DatabaseURL string            `json:"database_url" validate:"required"`
	Embedding   EmbeddingConfig   `json:"embedding"`
	VectorIndex VectorIndexConfig `json:"vector_index"`
	Extraction  ExtractionConfig  `json:"extraction"`
	Debug       bool              `json:"debug,omitempty"`
	LogJSON     bool              `json:"log_json,omitempty"`
}

// Load reads configuration from an optional JSON file, applies environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overlays environment variables onto file-provided values.
func (c *Config) applyEnv() {
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.Embedding.EndpointURL, "EMBEDDING_ENDPOINT_URL")
	setString(&c.Embedding.APIKey, "EMBEDDING_API_KEY")
	setString(&c.Embedding.Model, "EMBEDDING_MODEL")
	setString(&c.VectorIndex.BaseURL, "VECTOR_INDEX_BASE_URL")
	setString(&c.VectorIndex.APIKey, "VECTOR_INDEX_API_KEY")
	setString(&c.Extraction.URL, "EXTRACTION_SERVICE_URL")
	setString(&c.Extraction.GeminiAPIKey, "GEMINI_API_KEY")
	setBool(&c.Debug, "CAREERFIT_DEBUG")
	setBool(&c.LogJSON, "CAREERFIT_LOG_JSON")
}

// Validate checks the configuration with struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, env string) {
	if v, ok := os.LookupEnv(env); ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}
