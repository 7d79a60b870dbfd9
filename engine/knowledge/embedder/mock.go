package embedder

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// mockClient is a deterministic feature-hashing embedder. Tokens are hashed
// into a fixed number of buckets and the vector is L2-normalized, so texts
// sharing vocabulary score high on cosine similarity. It exists so retrieval
// behaves sensibly in tests and demo runs without a model backend.
type mockClient struct {
	dimension int
}

func newMockClient(dimension int) *mockClient {
	return &mockClient{dimension: dimension}
}

// CreateEmbedding implements embeddings.EmbedderClient.
func (m *mockClient) CreateEmbedding(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = m.embed(text)
	}
	return vectors, nil
}

func (m *mockClient) embed(text string) []float32 {
	vector := make([]float32, m.dimension)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vector[int(h.Sum32())%m.dimension]++
	}
	return normalize(vector)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(vector []float32) []float32 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vector
	}
	norm := float32(math.Sqrt(sum))
	for i := range vector {
		vector[i] /= norm
	}
	return vector
}
