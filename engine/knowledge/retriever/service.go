package retriever

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/embedder"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/vectordb"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

// Service embeds queries and answers top-k similarity lookups over the
// ingested knowledge base.
type Service struct {
	embedder embedder.Embedder
	store    vectordb.Store
	topK     int
	minScore float64
}

func NewService(emb embedder.Embedder, store vectordb.Store, topK int, minScore float64) (*Service, error) {
	if emb == nil {
		return nil, errors.New("retriever: embedder is required")
	}
	if store == nil {
		return nil, errors.New("retriever: vector store is required")
	}
	if topK <= 0 {
		return nil, fmt.Errorf("retriever: top-k must be greater than zero, got %d", topK)
	}
	return &Service{embedder: emb, store: store, topK: topK, minScore: minScore}, nil
}

// Ingest embeds the passages and upserts them with position-derived ids.
func (s *Service) Ingest(ctx context.Context, passages []string) error {
	if len(passages) == 0 {
		return errors.New("retriever: no passages to ingest")
	}
	start := time.Now()
	vectors, err := s.embedder.EmbedDocuments(ctx, passages)
	if err != nil {
		return fmt.Errorf("retriever: embed passages: %w", err)
	}
	if len(vectors) != len(passages) {
		return fmt.Errorf("retriever: received %d embeddings for %d passages", len(vectors), len(passages))
	}
	records := make([]vectordb.Record, len(passages))
	for i := range passages {
		records[i] = vectordb.Record{
			ID:        fmt.Sprintf("kb-%03d", i),
			Text:      passages[i],
			Embedding: vectors[i],
		}
	}
	if err := s.store.Upsert(ctx, records); err != nil {
		return fmt.Errorf("retriever: upsert passages: %w", err)
	}
	knowledge.RecordIngestDuration(ctx, time.Since(start))
	logger.FromContext(ctx).Info("knowledge base ingested", "passages", len(records), "took", time.Since(start))
	return nil
}

// Retrieve returns the top-k passages most similar to the query.
func (s *Service) Retrieve(ctx context.Context, query string) ([]knowledge.RetrievedContext, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("retriever: query is required")
	}
	knowledge.RecordRetrievalAttempt(ctx)
	start := time.Now()
	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("retriever: embed query: %w", err)
	}
	matches, err := s.store.Search(ctx, vector, vectordb.SearchOptions{
		TopK:     s.topK,
		MinScore: s.minScore,
	})
	if err != nil {
		return nil, fmt.Errorf("retriever: search: %w", err)
	}
	knowledge.RecordQueryLatency(ctx, time.Since(start))
	if len(matches) == 0 {
		knowledge.RecordRetrievalEmpty(ctx)
		return nil, nil
	}
	contexts := make([]knowledge.RetrievedContext, len(matches))
	for i, match := range matches {
		contexts[i] = knowledge.RetrievedContext{ID: match.ID, Text: match.Text, Score: match.Score}
	}
	logger.FromContext(ctx).Debug("knowledge retrieved", "results", len(contexts), "took", time.Since(start))
	return contexts, nil
}
