package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/memory"
	"github.com/tmc/langchaingo/prompts"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

// Generator composes a free-text answer from a question and retrieved
// passages. Implementations may fail; the caller decides how to degrade.
type Generator interface {
	Answer(ctx context.Context, question string, contexts []knowledge.RetrievedContext) (string, error)
}

// LangChainGenerator renders the QA prompt over the retrieved passages,
// prepends the conversation so far, and calls the configured model. One
// generator holds one in-memory conversation buffer for the process lifetime.
type LangChainGenerator struct {
	model       llms.Model
	prompt      prompts.PromptTemplate
	temperature float64
	maxTokens   int

	historyMu sync.Mutex
	history   *memory.ConversationBuffer
}

// NewGenerator wires a generator around an existing model.
func NewGenerator(model llms.Model, cfg *Config) (*LangChainGenerator, error) {
	if model == nil {
		return nil, errors.New("llm: model is required")
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &LangChainGenerator{
		model:       model,
		prompt:      newQAPrompt(),
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		history:     memory.NewConversationBuffer(),
	}, nil
}

// Answer implements Generator. The raw model output is returned untouched;
// prompt-echo cleanup belongs to the agent.
func (g *LangChainGenerator) Answer(
	ctx context.Context,
	question string,
	contexts []knowledge.RetrievedContext,
) (string, error) {
	rendered, err := g.prompt.Format(map[string]any{
		"context":  joinContexts(contexts),
		"question": question,
	})
	if err != nil {
		return "", fmt.Errorf("llm: render prompt: %w", err)
	}
	messages, err := g.conversationMessages(ctx)
	if err != nil {
		return "", err
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, rendered))
	start := time.Now()
	response, err := g.model.GenerateContent(ctx, messages,
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("llm: generate content: %w", err)
	}
	if response == nil || len(response.Choices) == 0 {
		return "", errors.New("llm: empty response from model")
	}
	answer := response.Choices[0].Content
	logger.FromContext(ctx).Debug("answer generated", "took", time.Since(start), "chars", len(answer))
	if err := g.remember(ctx, question, answer); err != nil {
		logger.FromContext(ctx).Warn("failed to record conversation turn", "error", err)
	}
	return answer, nil
}

func (g *LangChainGenerator) conversationMessages(ctx context.Context) ([]llms.MessageContent, error) {
	g.historyMu.Lock()
	defer g.historyMu.Unlock()
	turns, err := g.history.ChatHistory.Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("llm: load conversation history: %w", err)
	}
	messages := make([]llms.MessageContent, 0, len(turns)+1)
	for _, turn := range turns {
		role := llms.ChatMessageTypeHuman
		if turn.GetType() == llms.ChatMessageTypeAI {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.GetContent()))
	}
	return messages, nil
}

func (g *LangChainGenerator) remember(ctx context.Context, question, answer string) error {
	g.historyMu.Lock()
	defer g.historyMu.Unlock()
	if err := g.history.ChatHistory.AddUserMessage(ctx, question); err != nil {
		return err
	}
	return g.history.ChatHistory.AddAIMessage(ctx, answer)
}

func joinContexts(contexts []knowledge.RetrievedContext) string {
	if len(contexts) == 0 {
		return "No store information available."
	}
	texts := make([]string, len(contexts))
	for i, c := range contexts {
		texts[i] = c.Text
	}
	return strings.Join(texts, "\n\n")
}
