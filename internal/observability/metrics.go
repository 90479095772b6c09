package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/faizhadyan1212/StuMa-Api/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

type AppMetrics struct {
	authRegisterCounter      metric.Int64Counter
	authLoginCounter         metric.Int64Counter
	tokenValidationCounter   metric.Int64Counter
	profileEventCounter      metric.Int64Counter
	itemOpDuration           metric.Float64Histogram
	rateLimitDecisionCounter metric.Int64Counter
}

var (
	metricsMu  sync.RWMutex
	appMetrics *AppMetrics
)

func InitMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdkmetric.MeterProvider, error) {
	if !cfg.OTELMetricsEnabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		logger.Info("otel metrics disabled")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.OTELEnvironment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create metric resource: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OTELMetricsExportInterval))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "item.operation.duration"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
					Boundaries: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
				},
			},
		)),
	)
	otel.SetMeterProvider(mp)

	meter := mp.Meter("stuma-api")
	registerCounter, err := meter.Int64Counter("auth.register.attempts")
	if err != nil {
		return nil, err
	}
	loginCounter, err := meter.Int64Counter("auth.login.attempts")
	if err != nil {
		return nil, err
	}
	tokenCounter, err := meter.Int64Counter("auth.token.validations")
	if err != nil {
		return nil, err
	}
	profileCounter, err := meter.Int64Counter("profile.events")
	if err != nil {
		return nil, err
	}
	itemDuration, err := meter.Float64Histogram("item.operation.duration", metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	rateLimitCounter, err := meter.Int64Counter("http.rate_limit.decisions")
	if err != nil {
		return nil, err
	}

	metricsMu.Lock()
	appMetrics = &AppMetrics{
		authRegisterCounter:      registerCounter,
		authLoginCounter:         loginCounter,
		tokenValidationCounter:   tokenCounter,
		profileEventCounter:      profileCounter,
		itemOpDuration:           itemDuration,
		rateLimitDecisionCounter: rateLimitCounter,
	}
	metricsMu.Unlock()

	logger.Info("otel metrics initialized", "endpoint", cfg.OTELExporterOTLPEndpoint, "interval", cfg.OTELMetricsExportInterval.String())
	return mp, nil
}

func RecordAuthRegister(ctx context.Context, status string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.authRegisterCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordAuthLogin(ctx context.Context, status string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.authLoginCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordTokenValidation(ctx context.Context, outcome string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.tokenValidationCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func RecordProfileEvent(ctx context.Context, action, outcome string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.profileEventCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("action", action),
			attribute.String("outcome", outcome),
		),
	)
}

func RecordItemOperation(ctx context.Context, op, outcome string, duration time.Duration) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.itemOpDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome),
		),
	)
}

func RecordRateLimitDecision(ctx context.Context, scope, outcome string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.rateLimitDecisionCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("scope", scope),
			attribute.String("outcome", outcome),
		),
	)
}
