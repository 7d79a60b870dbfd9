package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes the environment variables read by Load.
const envPrefix = "SHOPASSIST_"

// Config is the full runtime configuration for the assistant.
type Config struct {
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	LLM       LLMConfig       `koanf:"llm"       validate:"required"`
	Embedder  EmbedderConfig  `koanf:"embedder"  validate:"required"`
	Retrieval RetrievalConfig `koanf:"retrieval" validate:"required"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`
}

func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LLMConfig struct {
	Provider string `koanf:"provider" validate:"oneof=openai ollama"`
	Model    string `koanf:"model"    validate:"required"`
	APIKey   string `koanf:"api_key"`
	BaseURL  string `koanf:"base_url"`
	// Temperature keeps generated answers close to the retrieved passages.
	Temperature float64 `koanf:"temperature" validate:"min=0,max=2"`
	MaxTokens   int     `koanf:"max_tokens"  validate:"min=1"`
}

type EmbedderConfig struct {
	Provider  string `koanf:"provider"   validate:"oneof=openai ollama mock"`
	Model     string `koanf:"model"      validate:"required"`
	APIKey    string `koanf:"api_key"`
	BaseURL   string `koanf:"base_url"`
	Dimension int    `koanf:"dimension"  validate:"min=1"`
	BatchSize int    `koanf:"batch_size" validate:"min=1"`
	CacheSize int    `koanf:"cache_size" validate:"min=0"`
}

type RetrievalConfig struct {
	TopK     int     `koanf:"top_k"     validate:"min=1"`
	MinScore float64 `koanf:"min_score" validate:"min=0,max=1"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the configuration used when no environment overrides are set.
// The mock embedder keeps the assistant runnable without provider credentials.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			Temperature: 0.3,
			MaxTokens:   256,
		},
		Embedder: EmbedderConfig{
			Provider:  "mock",
			Model:     "all-minilm",
			Dimension: 256,
			BatchSize: 16,
			CacheSize: 512,
		},
		Retrieval: RetrievalConfig{TopK: 5, MinScore: 0},
		Log:       LogConfig{Level: "info"},
	}
}

// envKeyOverrides maps environment variables whose koanf paths contain
// underscores and cannot be derived mechanically from the variable name.
var envKeyOverrides = map[string]string{
	envPrefix + "LLM_API_KEY":         "llm.api_key",
	envPrefix + "LLM_BASE_URL":        "llm.base_url",
	envPrefix + "LLM_MAX_TOKENS":      "llm.max_tokens",
	envPrefix + "EMBEDDER_API_KEY":    "embedder.api_key",
	envPrefix + "EMBEDDER_BASE_URL":   "embedder.base_url",
	envPrefix + "EMBEDDER_BATCH_SIZE": "embedder.batch_size",
	envPrefix + "EMBEDDER_CACHE_SIZE": "embedder.cache_size",
	envPrefix + "RETRIEVAL_TOP_K":     "retrieval.top_k",
	envPrefix + "RETRIEVAL_MIN_SCORE": "retrieval.min_score",
}

func transformEnvKey(key string) string {
	if path, ok := envKeyOverrides[key]; ok {
		return path
	}
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Load builds the configuration from defaults overlaid with SHOPASSIST_*
// environment variables, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return &cfg, nil
}
