package vectordb

import "context"

// Provider enumerates supported vector store backends.
type Provider string

// ProviderMemory holds embeddings in process memory; the knowledge base is
// small and static, so nothing needs to survive a restart.
const ProviderMemory Provider = "memory"

// Record is a passage persisted to the vector store.
type Record struct {
	ID        string
	Text      string
	Embedding []float32
}

// SearchOptions controls similarity search execution.
type SearchOptions struct {
	TopK     int
	MinScore float64
}

// Match is a similarity search result.
type Match struct {
	ID    string
	Score float64
	Text  string
}

// Store is the minimal contract for ingestion and retrieval.
type Store interface {
	Upsert(ctx context.Context, records []Record) error
	Search(ctx context.Context, query []float32, opts SearchOptions) ([]Match, error)
	Close(ctx context.Context) error
}

// Config captures normalized settings for a vector store.
type Config struct {
	Provider  Provider
	Dimension int
}
