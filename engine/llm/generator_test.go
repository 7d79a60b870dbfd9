package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge"
)

type stubModel struct {
	fail     bool
	response string
	requests [][]llms.MessageContent
}

func (s *stubModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	s.requests = append(s.requests, messages)
	if s.fail {
		return nil, errors.New("model unavailable")
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.response}},
	}, nil
}

func (s *stubModel) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return "", nil
}

func testConfig() *Config {
	return &Config{Provider: ProviderOpenAI, Model: "stub", Temperature: 0.3, MaxTokens: 256}
}

func promptText(t *testing.T, messages []llms.MessageContent) string {
	t.Helper()
	require.NotEmpty(t, messages)
	last := messages[len(messages)-1]
	require.NotEmpty(t, last.Parts)
	text, ok := last.Parts[0].(llms.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewGenerator(t *testing.T) {
	t.Run("Should require a model", func(t *testing.T) {
		_, err := NewGenerator(nil, testConfig())
		require.Error(t, err)
	})

	t.Run("Should validate the config", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxTokens = 0
		_, err := NewGenerator(&stubModel{}, cfg)
		require.Error(t, err)
	})
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("Should render retrieved passages and the question into the prompt", func(t *testing.T) {
		model := &stubModel{response: "Standard delivery takes 3 to 7 business days after shipping."}
		gen, err := NewGenerator(model, testConfig())
		require.NoError(t, err)
		answer, err := gen.Answer(ctx, "how long is delivery", []knowledge.RetrievedContext{
			{ID: "kb-008", Text: "Standard delivery usually takes between 3 and 7 business days."},
		})
		require.NoError(t, err)
		assert.Equal(t, model.response, answer)
		prompt := promptText(t, model.requests[0])
		assert.Contains(t, prompt, "Standard delivery usually takes")
		assert.Contains(t, prompt, "Customer question: how long is delivery")
		assert.Contains(t, prompt, "online store customer support agent")
	})

	t.Run("Should note missing store information when nothing was retrieved", func(t *testing.T) {
		model := &stubModel{response: "I cannot see your exact order, please check 'My Orders'."}
		gen, err := NewGenerator(model, testConfig())
		require.NoError(t, err)
		_, err = gen.Answer(ctx, "anything", nil)
		require.NoError(t, err)
		assert.Contains(t, promptText(t, model.requests[0]), "No store information available.")
	})

	t.Run("Should carry previous turns into the next request", func(t *testing.T) {
		model := &stubModel{response: "Refunds take 5 to 7 business days once approved."}
		gen, err := NewGenerator(model, testConfig())
		require.NoError(t, err)
		_, err = gen.Answer(ctx, "first question", nil)
		require.NoError(t, err)
		_, err = gen.Answer(ctx, "second question", nil)
		require.NoError(t, err)
		require.Len(t, model.requests, 2)
		// history user turn + history ai turn + new prompt
		assert.Len(t, model.requests[1], 3)
	})

	t.Run("Should propagate model failures", func(t *testing.T) {
		gen, err := NewGenerator(&stubModel{fail: true}, testConfig())
		require.NoError(t, err)
		_, err = gen.Answer(ctx, "anything", nil)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "generate content"))
	})
}

func TestNewModel(t *testing.T) {
	t.Run("Should reject unknown providers", func(t *testing.T) {
		cfg := testConfig()
		cfg.Provider = "huggingface"
		_, err := NewModel(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not supported")
	})
}
