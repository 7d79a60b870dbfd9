package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/vectordb"
)

type closeTrackingStore struct {
	closed   bool
	closeCtx context.Context
}

func (s *closeTrackingStore) Upsert(context.Context, []vectordb.Record) error { return nil }

func (s *closeTrackingStore) Search(context.Context, []float32, vectordb.SearchOptions) ([]vectordb.Match, error) {
	return nil, nil
}

func (s *closeTrackingStore) Close(ctx context.Context) error {
	s.closed = true
	s.closeCtx = ctx
	return nil
}

func TestAssistantClose(t *testing.T) {
	t.Run("Should close the vector store with the caller's context", func(t *testing.T) {
		store := &closeTrackingStore{}
		app := &assistant{store: store}
		ctx := context.Background()
		require.NoError(t, app.Close(ctx))
		assert.True(t, store.closed)
		assert.Equal(t, ctx, store.closeCtx)
	})

	t.Run("Should tolerate a missing vector store", func(t *testing.T) {
		app := &assistant{}
		assert.NoError(t, app.Close(context.Background()))
	})
}
