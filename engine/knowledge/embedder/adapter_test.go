package embedder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/embeddings"
)

func mustEmbedder(t *testing.T, client embeddings.EmbedderClient) embeddings.Embedder {
	t.Helper()
	impl, err := embeddings.NewEmbedder(client)
	require.NoError(t, err)
	return impl
}

type countingClient struct {
	calls int
}

func (c *countingClient) CreateEmbedding(_ context.Context, texts []string) ([][]float32, error) {
	c.calls++
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}

func TestValidateConfig(t *testing.T) {
	t.Run("Should reject a missing provider", func(t *testing.T) {
		err := validateConfig(&Config{Model: "m", Dimension: 8, BatchSize: 1})
		assert.ErrorIs(t, err, errMissingProvider)
	})

	t.Run("Should reject a zero dimension", func(t *testing.T) {
		err := validateConfig(&Config{Provider: ProviderMock, Model: "m", BatchSize: 1})
		assert.ErrorIs(t, err, errInvalidDimension)
	})

	t.Run("Should reject an unsupported provider at build time", func(t *testing.T) {
		_, err := New(&Config{Provider: "faiss", Model: "m", Dimension: 8, BatchSize: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not supported")
	})
}

func TestMockEmbedder(t *testing.T) {
	ctx := context.Background()
	adapter, err := New(&Config{Provider: ProviderMock, Model: "mock", Dimension: 64, BatchSize: 4})
	require.NoError(t, err)

	t.Run("Should produce deterministic vectors of the configured dimension", func(t *testing.T) {
		first, err := adapter.EmbedQuery(ctx, "where is my refund")
		require.NoError(t, err)
		second, err := adapter.EmbedQuery(ctx, "where is my refund")
		require.NoError(t, err)
		require.Len(t, first, 64)
		assert.Equal(t, first, second)
	})

	t.Run("Should score overlapping vocabulary above unrelated text", func(t *testing.T) {
		refund, err := adapter.EmbedQuery(ctx, "refund processed after quality check")
		require.NoError(t, err)
		related, err := adapter.EmbedQuery(ctx, "when is my refund processed")
		require.NoError(t, err)
		unrelated, err := adapter.EmbedQuery(ctx, "zebra quantum volcano")
		require.NoError(t, err)
		assert.Greater(t, dot(refund, related), dot(refund, unrelated))
	})

	t.Run("Should embed batches one vector per text", func(t *testing.T) {
		vectors, err := adapter.EmbedDocuments(ctx, []string{"a b", "c d", "e f"})
		require.NoError(t, err)
		assert.Len(t, vectors, 3)
	})
}

func TestAdapterCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Should serve repeated queries from the cache", func(t *testing.T) {
		client := &countingClient{}
		cfg := &Config{Provider: ProviderMock, Model: "stub", Dimension: 3, BatchSize: 2, CacheSize: 16}
		adapter, err := New(cfg)
		require.NoError(t, err)
		adapter.impl = mustEmbedder(t, client)
		_, err = adapter.EmbedQuery(ctx, "same question")
		require.NoError(t, err)
		_, err = adapter.EmbedQuery(ctx, "same question")
		require.NoError(t, err)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("Should only embed uncached documents in a batch", func(t *testing.T) {
		client := &countingClient{}
		cfg := &Config{Provider: ProviderMock, Model: "stub", Dimension: 3, BatchSize: 8, CacheSize: 16}
		adapter, err := New(cfg)
		require.NoError(t, err)
		adapter.impl = mustEmbedder(t, client)
		_, err = adapter.EmbedDocuments(ctx, []string{"one", "two"})
		require.NoError(t, err)
		vectors, err := adapter.EmbedDocuments(ctx, []string{"one", "two"})
		require.NoError(t, err)
		assert.Len(t, vectors, 2)
		assert.Equal(t, 1, client.calls)
	})
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
