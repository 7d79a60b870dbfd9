package knowledge

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce             sync.Once
	metricsMu               sync.Mutex
	metricsInitErr          error
	ingestDurationHist      metric.Float64Histogram
	queryLatencyHist        metric.Float64Histogram
	retrievalAttemptCounter metric.Int64Counter
	retrievalEmptyCounter   metric.Int64Counter
	intentDecisionCounter   metric.Int64Counter
	generationFailedCounter metric.Int64Counter
)

func RecordIngestDuration(ctx context.Context, d time.Duration) {
	if err := ensureMetrics(); err != nil || ingestDurationHist == nil {
		return
	}
	ingestDurationHist.Record(ctx, d.Seconds())
}

func RecordQueryLatency(ctx context.Context, d time.Duration) {
	if err := ensureMetrics(); err != nil || queryLatencyHist == nil {
		return
	}
	queryLatencyHist.Record(ctx, d.Seconds())
}

func RecordRetrievalAttempt(ctx context.Context) {
	if err := ensureMetrics(); err != nil || retrievalAttemptCounter == nil {
		return
	}
	retrievalAttemptCounter.Add(ctx, 1)
}

func RecordRetrievalEmpty(ctx context.Context) {
	if err := ensureMetrics(); err != nil || retrievalEmptyCounter == nil {
		return
	}
	retrievalEmptyCounter.Add(ctx, 1)
}

// RecordIntentDecision counts which routing rule answered a message.
func RecordIntentDecision(ctx context.Context, intent string) {
	if err := ensureMetrics(); err != nil || intentDecisionCounter == nil {
		return
	}
	intentDecisionCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("intent", intent)))
}

// RecordGenerationFailure counts fallback generation errors by cause bucket.
func RecordGenerationFailure(ctx context.Context, cause string) {
	if err := ensureMetrics(); err != nil || generationFailedCounter == nil {
		return
	}
	generationFailedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("cause", cause)))
}

func ResetMetricsForTesting() {
	metricsMu.Lock()
	metricsOnce = sync.Once{}
	metricsInitErr = nil
	ingestDurationHist = nil
	queryLatencyHist = nil
	retrievalAttemptCounter = nil
	retrievalEmptyCounter = nil
	intentDecisionCounter = nil
	generationFailedCounter = nil
	metricsMu.Unlock()
}

func ensureMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("shopassist.knowledge")
		metricsInitErr = initMetrics(meter)
	})
	return metricsInitErr
}

func initMetrics(meter metric.Meter) error {
	var err error
	ingestDurationHist, err = meter.Float64Histogram(
		"shopassist_knowledge_ingest_duration_seconds",
		metric.WithDescription("Latency of knowledge base ingestion runs"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(.05, .1, .25, .5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return err
	}
	queryLatencyHist, err = meter.Float64Histogram(
		"shopassist_knowledge_query_duration_seconds",
		metric.WithDescription("Latency of similarity queries"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(.005, .01, .025, .05, .1, .25, .5, 1, 2.5),
	)
	if err != nil {
		return err
	}
	retrievalAttemptCounter, err = meter.Int64Counter(
		"shopassist_knowledge_retrieval_attempts_total",
		metric.WithDescription("Number of retrieval attempts"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}
	retrievalEmptyCounter, err = meter.Int64Counter(
		"shopassist_knowledge_retrieval_empty_total",
		metric.WithDescription("Number of retrievals returning no passages"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}
	intentDecisionCounter, err = meter.Int64Counter(
		"shopassist_agent_intent_decisions_total",
		metric.WithDescription("Number of messages answered per routing rule"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}
	generationFailedCounter, err = meter.Int64Counter(
		"shopassist_agent_generation_failures_total",
		metric.WithDescription("Number of fallback generation failures"),
		metric.WithUnit("1"),
	)
	return err
}
