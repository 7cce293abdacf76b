package observability

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/authzkit/rebac"
)

const instrumentationName = "github.com/kbukum/authzkit/observability"

// InstrumentedChecker wraps a permission checker with a span and metrics
// per check. The decision itself is untouched.
type InstrumentedChecker struct {
	inner    *rebac.Checker
	tracer   trace.Tracer
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewInstrumentedChecker creates the wrapper using the global providers.
func NewInstrumentedChecker(inner *rebac.Checker) (*InstrumentedChecker, error) {
	meter := otel.Meter(instrumentationName)
	total, err := meter.Int64Counter("authz.check.total",
		metric.WithDescription("Total number of permission checks"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("authz.check.duration",
		metric.WithDescription("Duration of permission checks in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &InstrumentedChecker{
		inner:    inner,
		tracer:   otel.Tracer(instrumentationName),
		total:    total,
		duration: duration,
	}, nil
}

// Unwrap returns the underlying checker.
func (ic *InstrumentedChecker) Unwrap() *rebac.Checker {
	return ic.inner
}

// Check runs a permission check inside a span and records it.
func (ic *InstrumentedChecker) Check(ctx context.Context, user, permission, object string) rebac.Decision {
	ctx, span := ic.tracer.Start(ctx, "authz.check", trace.WithAttributes(
		attribute.String("authz.user", user),
		attribute.String("authz.permission", permission),
		attribute.String("authz.object", object),
	))
	defer span.End()

	start := time.Now()
	decision := ic.inner.Check(user, permission, object)
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Bool("authz.allowed", decision.Allowed))

	attrs := metric.WithAttributes(
		attribute.String("permission", permission),
		attribute.String("allowed", strconv.FormatBool(decision.Allowed)),
	)
	ic.total.Add(ctx, 1, attrs)
	ic.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("permission", permission),
	))
	return decision
}

// ListAccessible runs an accessible-objects query inside a span.
func (ic *InstrumentedChecker) ListAccessible(ctx context.Context, user, permission, objectType string) []rebac.Ref {
	_, span := ic.tracer.Start(ctx, "authz.list_accessible", trace.WithAttributes(
		attribute.String("authz.user", user),
		attribute.String("authz.permission", permission),
		attribute.String("authz.object_type", objectType),
	))
	defer span.End()

	refs := ic.inner.ListAccessible(user, permission, objectType)
	span.SetAttributes(attribute.Int("authz.result_count", len(refs)))
	return refs
}

// FilteredRead runs a permission-gated content read inside a span.
func (ic *InstrumentedChecker) FilteredRead(ctx context.Context, user, object string) string {
	_, span := ic.tracer.Start(ctx, "authz.filtered_read", trace.WithAttributes(
		attribute.String("authz.user", user),
		attribute.String("authz.object", object),
	))
	defer span.End()

	return ic.inner.FilteredRead(user, object)
}
