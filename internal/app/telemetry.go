package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	meterName            = "github.com/metinatakli/cinema-ticket-service/internal/app"
	metricExportInterval = 15 * time.Second
	telemetryShutdownTTL = 5 * time.Second
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// InitTelemetry installs the global trace, meter and log providers exporting
// to the collector and returns a function flushing them. Without a collector
// URL nothing is installed and the otel no-op globals stay in place.
func InitTelemetry(cfg Config, logger *slog.Logger) (func(context.Context), error) {
	if cfg.OtelCollectorUrl == "" {
		logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(cfg.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}

	tracerProvider, err := newTracerProvider(ctx, cfg.OtelCollectorUrl, res)
	if err != nil {
		return nil, err
	}

	meterProvider, err := newMeterProvider(ctx, cfg.OtelCollectorUrl, res)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx))
	}

	loggerProvider, err := newLoggerProvider(ctx, cfg.OtelCollectorUrl, res)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx), meterProvider.Shutdown(ctx))
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)

	shutdown := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, telemetryShutdownTTL)
		defer cancel()

		err := errors.Join(
			tracerProvider.Shutdown(ctx),
			meterProvider.Shutdown(ctx),
			loggerProvider.Shutdown(ctx),
		)
		if err != nil {
			logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}

	return shutdown, nil
}

func newTracerProvider(ctx context.Context, endpoint string, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	), nil
}

func newMeterProvider(ctx context.Context, endpoint string, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel metric exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricExportInterval))

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	), nil
}

func newLoggerProvider(ctx context.Context, endpoint string, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel log exporter: %w", err)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	), nil
}

// purchaseMetrics holds the ticket sale instruments. They are created from the
// global meter provider, so they only export once InitTelemetry installed one.
type purchaseMetrics struct {
	purchases   metric.Int64Counter
	ticketsSold metric.Int64Counter
	revenue     metric.Int64Counter
}

func newPurchaseMetrics(logger *slog.Logger) *purchaseMetrics {
	m, err := newPurchaseMetricsFromMeter(otel.Meter(meterName))
	if err != nil {
		logger.Error("failed to create purchase metrics, falling back to no-op", "error", err)
		m, _ = newPurchaseMetricsFromMeter(noop.NewMeterProvider().Meter(meterName))
	}

	return m
}

func newPurchaseMetricsFromMeter(meter metric.Meter) (*purchaseMetrics, error) {
	purchases, purchasesErr := meter.Int64Counter(
		"tickets.purchases",
		metric.WithDescription("Number of ticket purchase attempts by outcome"),
	)
	ticketsSold, ticketsSoldErr := meter.Int64Counter(
		"tickets.sold",
		metric.WithDescription("Number of tickets sold by ticket type"),
	)
	revenue, revenueErr := meter.Int64Counter(
		"tickets.revenue",
		metric.WithDescription("Total amount charged for tickets"),
	)

	err := errors.Join(purchasesErr, ticketsSoldErr, revenueErr)
	if err != nil {
		return nil, err
	}

	return &purchaseMetrics{
		purchases:   purchases,
		ticketsSold: ticketsSold,
		revenue:     revenue,
	}, nil
}

func (m *purchaseMetrics) recordOutcome(ctx context.Context, outcome string) {
	m.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *purchaseMetrics) recordPurchase(ctx context.Context, purchase domain.Purchase) {
	m.recordOutcome(ctx, outcomeAccepted)

	sold := map[domain.TicketType]int{
		domain.TicketTypeInfant: purchase.Counts.Infant,
		domain.TicketTypeChild:  purchase.Counts.Child,
		domain.TicketTypeAdult:  purchase.Counts.Adult,
	}

	for ticketType, count := range sold {
		if count <= 0 {
			continue
		}

		m.ticketsSold.Add(ctx, int64(count), metric.WithAttributes(attribute.String("type", string(ticketType))))
	}

	m.revenue.Add(ctx, int64(purchase.TotalAmount))
}

// MultiHandler fans slog records out to several handlers, typically the
// stdout handler and the otel log bridge.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{
		handlers: handlers,
	}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes a copy of the record to every handler enabled for its level.
// Errors from individual handlers are dropped.
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}

		_ = handler.Handle(ctx, record.Clone())
	}
	return nil
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.apply(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.apply(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (h *MultiHandler) apply(fn func(slog.Handler) slog.Handler) *MultiHandler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = fn(handler)
	}
	return &MultiHandler{handlers: handlers}
}
