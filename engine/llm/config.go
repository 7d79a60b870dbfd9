package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Provider enumerates supported generation backends.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Config captures normalized generation settings.
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("llm config is required")
	}
	if strings.TrimSpace(string(cfg.Provider)) == "" {
		return errors.New("llm provider is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return errors.New("llm model is required")
	}
	if cfg.MaxTokens <= 0 {
		return fmt.Errorf("llm max tokens must be greater than zero, got %d", cfg.MaxTokens)
	}
	return nil
}

// NewModel builds the provider-backed langchaingo model.
func NewModel(cfg *Config) (llms.Model, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		opts := []openai.Option{openai.WithModel(cfg.Model)}
		if cfg.APIKey != "" {
			opts = append(opts, openai.WithToken(cfg.APIKey))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		model, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("llm: initialize openai model: %w", err)
		}
		return model, nil
	case ProviderOllama:
		opts := []ollama.Option{ollama.WithModel(cfg.Model)}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		model, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("llm: initialize ollama model: %w", err)
		}
		return model, nil
	default:
		return nil, fmt.Errorf("llm provider %q is not supported", cfg.Provider)
	}
}
