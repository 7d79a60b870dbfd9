package retriever_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/embedder"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/retriever"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/vectordb"
)

type stubEmbedder struct {
	failQuery bool
}

func (s *stubEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(i + 1), 0, 0}
	}
	return vectors, nil
}

func (s *stubEmbedder) EmbedQuery(context.Context, string) ([]float32, error) {
	if s.failQuery {
		return nil, errors.New("embed query failed")
	}
	return []float32{1, 0, 0}, nil
}

type stubStore struct {
	upserted []vectordb.Record
	matches  []vectordb.Match
}

func (s *stubStore) Upsert(_ context.Context, records []vectordb.Record) error {
	s.upserted = append(s.upserted, records...)
	return nil
}

func (s *stubStore) Search(_ context.Context, _ []float32, opts vectordb.SearchOptions) ([]vectordb.Match, error) {
	filtered := make([]vectordb.Match, 0, len(s.matches))
	for i := range s.matches {
		if s.matches[i].Score < opts.MinScore {
			continue
		}
		filtered = append(filtered, s.matches[i])
	}
	if opts.TopK > 0 && len(filtered) > opts.TopK {
		filtered = filtered[:opts.TopK]
	}
	return filtered, nil
}

func (s *stubStore) Close(context.Context) error { return nil }

func TestNewService(t *testing.T) {
	t.Run("Should require an embedder and a store", func(t *testing.T) {
		_, err := retriever.NewService(nil, &stubStore{}, 5, 0)
		require.Error(t, err)
		_, err = retriever.NewService(&stubEmbedder{}, nil, 5, 0)
		require.Error(t, err)
	})

	t.Run("Should reject a non-positive top-k", func(t *testing.T) {
		_, err := retriever.NewService(&stubEmbedder{}, &stubStore{}, 0, 0)
		require.Error(t, err)
	})
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("Should upsert one record per passage with stable ids", func(t *testing.T) {
		store := &stubStore{}
		svc, err := retriever.NewService(&stubEmbedder{}, store, 5, 0)
		require.NoError(t, err)
		require.NoError(t, svc.Ingest(ctx, []string{"first passage", "second passage"}))
		require.Len(t, store.upserted, 2)
		assert.Equal(t, "kb-000", store.upserted[0].ID)
		assert.Equal(t, "kb-001", store.upserted[1].ID)
		assert.Equal(t, "second passage", store.upserted[1].Text)
	})

	t.Run("Should reject an empty passage list", func(t *testing.T) {
		svc, err := retriever.NewService(&stubEmbedder{}, &stubStore{}, 5, 0)
		require.NoError(t, err)
		require.Error(t, svc.Ingest(ctx, nil))
	})
}

func TestRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return top-k contexts in store order", func(t *testing.T) {
		store := &stubStore{matches: []vectordb.Match{
			{ID: "kb-001", Score: 0.9, Text: "best"},
			{ID: "kb-004", Score: 0.7, Text: "good"},
			{ID: "kb-002", Score: 0.5, Text: "fair"},
		}}
		svc, err := retriever.NewService(&stubEmbedder{}, store, 2, 0)
		require.NoError(t, err)
		contexts, err := svc.Retrieve(ctx, "delivery time")
		require.NoError(t, err)
		require.Len(t, contexts, 2)
		assert.Equal(t, knowledge.RetrievedContext{ID: "kb-001", Text: "best", Score: 0.9}, contexts[0])
	})

	t.Run("Should return nil when nothing matches", func(t *testing.T) {
		svc, err := retriever.NewService(&stubEmbedder{}, &stubStore{}, 5, 0)
		require.NoError(t, err)
		contexts, err := svc.Retrieve(ctx, "anything")
		require.NoError(t, err)
		assert.Nil(t, contexts)
	})

	t.Run("Should reject a blank query", func(t *testing.T) {
		svc, err := retriever.NewService(&stubEmbedder{}, &stubStore{}, 5, 0)
		require.NoError(t, err)
		_, err = svc.Retrieve(ctx, "   ")
		require.Error(t, err)
	})

	t.Run("Should surface embedding failures", func(t *testing.T) {
		svc, err := retriever.NewService(&stubEmbedder{failQuery: true}, &stubStore{}, 5, 0)
		require.NoError(t, err)
		_, err = svc.Retrieve(ctx, "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embed query")
	})
}

func TestRetrieveOverRealStore(t *testing.T) {
	t.Run("Should rank the passage sharing vocabulary with the query first", func(t *testing.T) {
		ctx := context.Background()
		emb, err := embedder.New(&embedder.Config{
			Provider: embedder.ProviderMock, Model: "mock", Dimension: 128, BatchSize: 8,
		})
		require.NoError(t, err)
		store, err := vectordb.New(&vectordb.Config{Provider: vectordb.ProviderMemory, Dimension: 128})
		require.NoError(t, err)
		svc, err := retriever.NewService(emb, store, 3, 0)
		require.NoError(t, err)
		require.NoError(t, svc.Ingest(ctx, []string{
			"Refunds are processed within 5 to 7 business days after pickup.",
			"Standard delivery takes between 3 and 7 business days after shipping.",
			"Coupon codes must be entered on the checkout page before payment.",
		}))
		contexts, err := svc.Retrieve(ctx, "how long until my refund is processed")
		require.NoError(t, err)
		require.NotEmpty(t, contexts)
		assert.Equal(t, "kb-000", contexts[0].ID)
	})
}
