package vectordb

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// memoryStore keeps records in a map guarded by a RWMutex. Search scores by
// cosine similarity and orders score-descending, then ID-ascending so equal
// scores stay deterministic.
type memoryStore struct {
	mu        sync.RWMutex
	dimension int
	records   map[string]Record
}

func newMemoryStore(cfg *Config) *memoryStore {
	return &memoryStore{
		dimension: cfg.Dimension,
		records:   make(map[string]Record),
	}
}

func (s *memoryStore) Upsert(_ context.Context, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range records {
		rec := records[i]
		if len(rec.Embedding) != s.dimension {
			return fmt.Errorf(
				"memory: record %q dimension mismatch (got %d want %d)",
				rec.ID, len(rec.Embedding), s.dimension,
			)
		}
		s.records[rec.ID] = Record{
			ID:        rec.ID,
			Text:      rec.Text,
			Embedding: append([]float32(nil), rec.Embedding...),
		}
	}
	return nil
}

func (s *memoryStore) Search(_ context.Context, query []float32, opts SearchOptions) ([]Match, error) {
	if len(query) != s.dimension {
		return nil, fmt.Errorf("memory: query dimension mismatch (got %d want %d)", len(query), s.dimension)
	}
	topK := opts.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidates := make([]Match, 0, len(s.records))
	for _, rec := range s.records {
		score := cosineSimilarity(rec.Embedding, query)
		if score < opts.MinScore {
			continue
		}
		candidates = append(candidates, Match{ID: rec.ID, Score: score, Text: rec.Text})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score == candidates[j].Score {
			return candidates[i].ID < candidates[j].ID
		}
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates, nil
}

func (s *memoryStore) Close(context.Context) error {
	s.mu.Lock()
	s.records = make(map[string]Record)
	s.mu.Unlock()
	return nil
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
