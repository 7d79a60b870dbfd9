package vectordb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errMissingProvider  = errors.New("vector store provider is required")
	errInvalidDimension = errors.New("vector store dimension must be greater than zero")
)

const defaultTopK = 5

// New instantiates a vector store backed by the requested provider.
func New(cfg *Config) (Store, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderMemory:
		return newMemoryStore(cfg), nil
	default:
		return nil, fmt.Errorf("vector store provider %q is not supported", cfg.Provider)
	}
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("vector store config is required")
	}
	if strings.TrimSpace(string(cfg.Provider)) == "" {
		return errMissingProvider
	}
	if cfg.Dimension <= 0 {
		return errInvalidDimension
	}
	return nil
}
