package embedder

import (
	"errors"
	"fmt"
	"strings"
)

// Provider enumerates supported embedding backends.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	// ProviderMock is a deterministic feature-hashing embedder used for tests
	// and keyless demo runs.
	ProviderMock Provider = "mock"
)

// Config captures normalized embedder settings.
type Config struct {
	Provider  Provider
	Model     string
	APIKey    string
	BaseURL   string
	Dimension int
	BatchSize int
	// StripNewLines follows common embedding-provider guidance for short passages.
	StripNewLines bool
	// CacheSize > 0 enables an LRU cache over embedded texts.
	CacheSize int
}

var (
	errMissingProvider  = errors.New("embedder provider is required")
	errMissingModel     = errors.New("embedder model is required")
	errInvalidDimension = errors.New("embedder dimension must be greater than zero")
	errInvalidBatchSize = errors.New("embedder batch size must be greater than zero")
)

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("embedder config is required")
	}
	if strings.TrimSpace(string(cfg.Provider)) == "" {
		return errMissingProvider
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return errMissingModel
	}
	if cfg.Dimension <= 0 {
		return errInvalidDimension
	}
	if cfg.BatchSize <= 0 {
		return errInvalidBatchSize
	}
	if cfg.CacheSize < 0 {
		return fmt.Errorf("embedder cache size must be non-negative, got %d", cfg.CacheSize)
	}
	return nil
}
