package cli

import (
	"context"
	"fmt"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/agent"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/embedder"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/retriever"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge/vectordb"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/llm"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/order"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/config"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

// assistant bundles the wired components shared by the serve and chat commands.
type assistant struct {
	router *agent.Router
	orders *order.Service
	store  vectordb.Store
}

func (a *assistant) Close(ctx context.Context) error {
	if a.store != nil {
		return a.store.Close(ctx)
	}
	return nil
}

// buildAssistant wires the order service, the knowledge retriever over the
// built-in passages, the generator, and the intent router from configuration.
func buildAssistant(ctx context.Context, cfg *config.Config, log logger.Logger) (*assistant, error) {
	orderStore := order.NewStore(nil)
	orders := order.NewService(orderStore, nil)

	emb, err := embedder.New(&embedder.Config{
		Provider:  embedder.Provider(cfg.Embedder.Provider),
		Model:     cfg.Embedder.Model,
		APIKey:    cfg.Embedder.APIKey,
		BaseURL:   cfg.Embedder.BaseURL,
		Dimension: cfg.Embedder.Dimension,
		BatchSize: cfg.Embedder.BatchSize,
		CacheSize: cfg.Embedder.CacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	store, err := vectordb.New(&vectordb.Config{
		Provider:  vectordb.ProviderMemory,
		Dimension: cfg.Embedder.Dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vector store: %w", err)
	}

	ret, err := retriever.NewService(emb, store, cfg.Retrieval.TopK, cfg.Retrieval.MinScore)
	if err != nil {
		return nil, fmt.Errorf("failed to create retriever: %w", err)
	}
	if err := ret.Ingest(ctx, knowledge.Passages()); err != nil {
		return nil, fmt.Errorf("failed to ingest knowledge base: %w", err)
	}

	llmCfg := &llm.Config{
		Provider:    llm.Provider(cfg.LLM.Provider),
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}
	model, err := llm.NewModel(llmCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create language model: %w", err)
	}
	gen, err := llm.NewGenerator(model, llmCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	router, err := agent.NewRouter(orders, ret, gen)
	if err != nil {
		return nil, fmt.Errorf("failed to create intent router: %w", err)
	}

	log.Info("assistant ready",
		"embedder", cfg.Embedder.Provider,
		"llm", cfg.LLM.Provider,
		"passages", len(knowledge.Passages()),
	)
	return &assistant{router: router, orders: orders, store: store}, nil
}
