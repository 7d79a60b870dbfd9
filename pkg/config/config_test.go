package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should load defaults without any environment set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
		assert.Equal(t, "mock", cfg.Embedder.Provider)
		assert.Equal(t, 5, cfg.Retrieval.TopK)
	})

	t.Run("Should override nested values from the environment", func(t *testing.T) {
		t.Setenv("SHOPASSIST_SERVER_PORT", "9090")
		t.Setenv("SHOPASSIST_RETRIEVAL_TOP_K", "3")
		t.Setenv("SHOPASSIST_LLM_MODEL", "llama3")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 3, cfg.Retrieval.TopK)
		assert.Equal(t, "llama3", cfg.LLM.Model)
	})

	t.Run("Should reject an unknown embedder provider", func(t *testing.T) {
		t.Setenv("SHOPASSIST_EMBEDDER_PROVIDER", "faiss")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("Should reject an out-of-range port", func(t *testing.T) {
		t.Setenv("SHOPASSIST_SERVER_PORT", "70000")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should use explicit mappings for underscore paths", func(t *testing.T) {
		assert.Equal(t, "retrieval.top_k", transformEnvKey("SHOPASSIST_RETRIEVAL_TOP_K"))
		assert.Equal(t, "llm.api_key", transformEnvKey("SHOPASSIST_LLM_API_KEY"))
	})

	t.Run("Should derive simple paths mechanically", func(t *testing.T) {
		assert.Equal(t, "server.port", transformEnvKey("SHOPASSIST_SERVER_PORT"))
		assert.Equal(t, "log.level", transformEnvKey("SHOPASSIST_LOG_LEVEL"))
	})
}
