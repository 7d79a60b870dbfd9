package embedder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder is the retrieval-facing contract for embedding backends.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Adapter wraps a langchaingo embedder, adds contextual errors and an
// optional LRU cache keyed by content hash.
type Adapter struct {
	provider  Provider
	model     string
	dimension int
	impl      embeddings.Embedder
	cacheMu   sync.Mutex
	cache     *lru.Cache[string, []float32]
}

// New constructs a provider-backed embedder adapter.
func New(cfg *Config) (*Adapter, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	impl, err := buildProviderEmbedder(cfg)
	if err != nil {
		return nil, err
	}
	a := &Adapter{
		provider:  cfg.Provider,
		model:     cfg.Model,
		dimension: cfg.Dimension,
		impl:      impl,
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, []float32](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("embedder %q: init cache: %w", cfg.Provider, err)
		}
		a.cache = cache
	}
	return a, nil
}

// Wrap constructs an adapter around an existing langchaingo embedder.
func Wrap(cfg *Config, impl embeddings.Embedder) (*Adapter, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if impl == nil {
		return nil, fmt.Errorf("embedder %q: implementation is required", cfg.Provider)
	}
	return &Adapter{
		provider:  cfg.Provider,
		model:     cfg.Model,
		dimension: cfg.Dimension,
		impl:      impl,
	}, nil
}

// Dimension returns the configured vector dimension.
func (a *Adapter) Dimension() int {
	return a.dimension
}

// EmbedDocuments embeds a batch of texts, serving cached entries where possible.
func (a *Adapter) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if a.cache == nil {
		vectors, err := a.impl.EmbedDocuments(ctx, texts)
		if err != nil {
			return nil, a.withContext(err)
		}
		return vectors, nil
	}
	results := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if vector, ok := a.lookupCache(text); ok {
			results[i] = vector
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}
	if len(missing) == 0 {
		return results, nil
	}
	embedded, err := a.impl.EmbedDocuments(ctx, missing)
	if err != nil {
		return nil, a.withContext(err)
	}
	if len(embedded) != len(missing) {
		return nil, a.withContext(fmt.Errorf("received %d embeddings for %d texts", len(embedded), len(missing)))
	}
	for i, vector := range embedded {
		results[missingIdx[i]] = cloneVector(vector)
		a.storeCache(missing[i], vector)
	}
	return results, nil
}

// EmbedQuery embeds a single query string.
func (a *Adapter) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if vector, ok := a.lookupCache(text); ok {
		return vector, nil
	}
	vector, err := a.impl.EmbedQuery(ctx, text)
	if err != nil {
		return nil, a.withContext(err)
	}
	a.storeCache(text, vector)
	return vector, nil
}

func (a *Adapter) lookupCache(text string) ([]float32, bool) {
	if a.cache == nil {
		return nil, false
	}
	a.cacheMu.Lock()
	value, ok := a.cache.Get(cacheKey(text))
	a.cacheMu.Unlock()
	if !ok {
		return nil, false
	}
	return cloneVector(value), true
}

func (a *Adapter) storeCache(text string, vector []float32) {
	if a.cache == nil || len(vector) == 0 {
		return
	}
	a.cacheMu.Lock()
	a.cache.Add(cacheKey(text), cloneVector(vector))
	a.cacheMu.Unlock()
}

func (a *Adapter) withContext(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("embedder %q: %w", a.provider, err)
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func cloneVector(src []float32) []float32 {
	if len(src) == 0 {
		return nil
	}
	dst := make([]float32, len(src))
	copy(dst, src)
	return dst
}

func buildProviderEmbedder(cfg *Config) (embeddings.Embedder, error) {
	options := []embeddings.Option{
		embeddings.WithBatchSize(cfg.BatchSize),
		embeddings.WithStripNewLines(cfg.StripNewLines),
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		return buildOpenAIEmbedder(cfg, options...)
	case ProviderOllama:
		return buildOllamaEmbedder(cfg, options...)
	case ProviderMock:
		return embeddings.NewEmbedder(newMockClient(cfg.Dimension), options...)
	default:
		return nil, fmt.Errorf("embedder provider %q is not supported", cfg.Provider)
	}
}

func buildOpenAIEmbedder(cfg *Config, opts ...embeddings.Option) (embeddings.Embedder, error) {
	openaiOpts := []openai.Option{
		openai.WithEmbeddingModel(cfg.Model),
	}
	if cfg.APIKey != "" {
		openaiOpts = append(openaiOpts, openai.WithToken(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		openaiOpts = append(openaiOpts, openai.WithBaseURL(cfg.BaseURL))
	}
	client, err := openai.New(openaiOpts...)
	if err != nil {
		return nil, fmt.Errorf("embedder: initialize openai client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(client, opts...)
	if err != nil {
		return nil, fmt.Errorf("embedder: construct openai embedder: %w", err)
	}
	return embedder, nil
}

func buildOllamaEmbedder(cfg *Config, opts ...embeddings.Option) (embeddings.Embedder, error) {
	ollamaOpts := []ollama.Option{
		ollama.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		ollamaOpts = append(ollamaOpts, ollama.WithServerURL(cfg.BaseURL))
	}
	client, err := ollama.New(ollamaOpts...)
	if err != nil {
		return nil, fmt.Errorf("embedder: initialize ollama client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(client, opts...)
	if err != nil {
		return nil, fmt.Errorf("embedder: construct ollama embedder: %w", err)
	}
	return embedder, nil
}
