package agent

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/knowledge"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/llm"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

// minAnswerLength is the low-confidence threshold in characters: cleaned
// fallback answers shorter than this are replaced by a clarifying prompt.
const minAnswerLength = 20

// OrderOps is the mock backend surface the router calls for actionable intents.
type OrderOps interface {
	OrderStatus(id string) string
	CreateReturn(id, reason string) string
	RefundPolicy() string
	PaymentFailedHelp() string
	DoubleChargeHelp() string
}

// Retriever answers similarity queries over the knowledge base.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]knowledge.RetrievedContext, error)
}

// message is one inbound turn, pre-lowered for the predicates.
type message struct {
	raw   string
	lower string
}

func newMessage(raw string) message {
	return message{raw: raw, lower: strings.ToLower(raw)}
}

// rule pairs an intent predicate with its handler. Rules are evaluated in
// slice order and the first match wins; the ordering is the routing contract.
type rule struct {
	name    string
	matches func(m message) bool
	handle  func(ctx context.Context, m message) string
}

// Router maps one free-text customer message to exactly one response string.
// It owns no state and never returns an error to its caller: every branch,
// including fallback failures, terminates in a fixed message.
type Router struct {
	orders    OrderOps
	retriever Retriever
	generator llm.Generator
	rules     []rule
}

func NewRouter(orders OrderOps, retriever Retriever, generator llm.Generator) (*Router, error) {
	if orders == nil {
		return nil, errors.New("agent: order service is required")
	}
	if retriever == nil {
		return nil, errors.New("agent: retriever is required")
	}
	if generator == nil {
		return nil, errors.New("agent: generator is required")
	}
	r := &Router{orders: orders, retriever: retriever, generator: generator}
	r.rules = r.buildRules()
	return r, nil
}

// Respond routes a message through the ordered rule table. Callers are
// expected to reject empty input before calling.
func (r *Router) Respond(ctx context.Context, raw string) string {
	m := newMessage(raw)
	for i := range r.rules {
		if !r.rules[i].matches(m) {
			continue
		}
		knowledge.RecordIntentDecision(ctx, r.rules[i].name)
		logger.FromContext(ctx).Debug("message routed", "intent", r.rules[i].name)
		return r.rules[i].handle(ctx, m)
	}
	// Unreachable: the fallback rule matches everything.
	return responseTechnicalIssue
}

// buildRules assembles the priority table. Escalation rules must precede the
// out-of-scope filter (a complaint mentioning "no response" escalates rather
// than being dismissed), and the actionable intents must precede the
// open-ended generation fallback.
func (r *Router) buildRules() []rule {
	return []rule{
		{
			name:    "greeting",
			matches: func(m message) bool { return exactIn(m.lower, greetingPhrases) },
			handle:  fixed(responseGreeting),
		},
		{
			name:    "generic_help",
			matches: func(m message) bool { return exactIn(m.lower, helpPhrases) },
			handle:  fixed(responseGenericHelp),
		},
		{
			name:    "courtesy",
			matches: func(m message) bool { return containsAny(m.lower, courtesyPhrases) },
			handle:  fixed(responseCourtesy),
		},
		{
			name:    "repeated_complaint",
			matches: func(m message) bool { return containsAny(m.lower, complaintPhrases) },
			handle:  fixed(responseComplaintEscalation),
		},
		{
			name:    "too_short",
			matches: func(m message) bool { return len(strings.Fields(m.lower)) < 2 },
			handle:  fixed(responseAskDetail),
		},
		{
			name:    "out_of_scope",
			matches: func(m message) bool { return !containsAny(m.lower, ecommerceKeywords) },
			handle:  fixed(responseOutOfScope),
		},
		{
			name:    "critical_escalation",
			matches: func(m message) bool { return containsAny(m.lower, criticalPhrases) },
			handle:  fixed(responseCriticalEscalation),
		},
		{
			name: "order_tracking",
			matches: func(m message) bool {
				return strings.Contains(m.lower, "order") &&
					containsAny(m.lower, []string{"status", "track", "where is"})
			},
			handle: func(_ context.Context, m message) string {
				id, ok := ExtractOrderID(m.raw)
				if !ok {
					return responseAskOrderIDTracking
				}
				return r.orders.OrderStatus(id)
			},
		},
		{
			name:    "return_exchange",
			matches: func(m message) bool { return containsAny(m.lower, returnPhrases) },
			handle: func(_ context.Context, m message) string {
				id, ok := ExtractOrderID(m.raw)
				if !ok {
					return responseAskOrderIDReturn
				}
				return r.orders.CreateReturn(id, m.raw)
			},
		},
		{
			name: "modify_cancel",
			matches: func(m message) bool {
				return strings.Contains(m.lower, "modify my order") ||
					strings.Contains(m.lower, "change my order")
			},
			handle: fixed(responseModifyPolicy),
		},
		{
			name: "payment_and_cancel",
			matches: func(m message) bool {
				return strings.Contains(m.lower, "payment") && strings.Contains(m.lower, "cancel")
			},
			handle: fixed(responsePaymentReversal + "\n\n" + responseCancellationWindow),
		},
		{
			name: "payment_failed",
			matches: func(m message) bool {
				return strings.Contains(m.lower, "payment failed") ||
					strings.Contains(m.lower, "upi failed")
			},
			handle: func(context.Context, message) string { return r.orders.PaymentFailedHelp() },
		},
		{
			name: "double_charge",
			matches: func(m message) bool {
				return strings.Contains(m.lower, "charged twice") ||
					strings.Contains(m.lower, "double charge")
			},
			handle: func(context.Context, message) string { return r.orders.DoubleChargeHelp() },
		},
		{
			name:    "refund_policy",
			matches: func(m message) bool { return strings.Contains(m.lower, "refund policy") },
			handle:  func(context.Context, message) string { return r.orders.RefundPolicy() },
		},
		{
			name:    "rag_fallback",
			matches: func(message) bool { return true },
			handle:  r.handleFallback,
		},
	}
}

// generationResult separates hard pipeline failures from successful but
// low-confidence answers so the causes can be observed distinctly.
type generationResult struct {
	answer string
	cause  string
	err    error
}

func (r *Router) generate(ctx context.Context, question string) generationResult {
	contexts, err := r.retriever.Retrieve(ctx, question)
	if err != nil {
		return generationResult{cause: "retrieval", err: err}
	}
	raw, err := r.generator.Answer(ctx, question, contexts)
	if err != nil {
		return generationResult{cause: "generation", err: err}
	}
	return generationResult{answer: CleanAnswer(raw)}
}

func (r *Router) handleFallback(ctx context.Context, m message) string {
	result := r.generate(ctx, m.raw)
	if result.err != nil {
		knowledge.RecordGenerationFailure(ctx, result.cause)
		logger.FromContext(ctx).Error("fallback generation failed",
			"cause", result.cause, "error", result.err)
		return responseTechnicalIssue
	}
	if utf8.RuneCountInString(result.answer) < minAnswerLength {
		knowledge.RecordGenerationFailure(ctx, "low_confidence")
		return responseNotSure
	}
	return result.answer
}

func fixed(text string) func(context.Context, message) string {
	return func(context.Context, message) string { return text }
}

func containsAny(haystack string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(haystack, phrase) {
			return true
		}
	}
	return false
}

func exactIn(lower string, phrases []string) bool {
	trimmed := strings.TrimSpace(lower)
	for _, phrase := range phrases {
		if trimmed == phrase {
			return true
		}
	}
	return false
}
