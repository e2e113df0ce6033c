package heaps

import (
	"context"
	"errors"

	"github.com/comfforts/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/constraints"

	hp "github.com/hankgalt/heap-lab/pkg/utils/heap"
)

const TRACER_NAME = "github.com/hankgalt/heap-lab/internal/usecase/heaps"

var ErrNilMeter = errors.New("heaps: meter is required")

// InstrumentedHeap is a lock guarded heap that logs through the context logger
// and reports counters and spans through OpenTelemetry.
type InstrumentedHeap[T constraints.Ordered] struct {
	id      string
	heap    *hp.SyncHeap[T]
	metrics *heapMetrics
	tracer  trace.Tracer
}

func NewInstrumentedHeap[T constraints.Ordered](capacity int, order hp.Order, meter metric.Meter) (*InstrumentedHeap[T], error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	h, err := hp.New[T](capacity, order)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	m, err := newHeapMetrics(meter,
		attribute.String(ATTR_ORDER, order.String()),
		attribute.String(ATTR_ID, id),
	)
	if err != nil {
		return nil, err
	}

	return &InstrumentedHeap[T]{
		id:      id,
		heap:    hp.NewSyncHeap(h),
		metrics: m,
		tracer:  otel.Tracer(TRACER_NAME),
	}, nil
}

func (ih *InstrumentedHeap[T]) ID() string      { return ih.id }
func (ih *InstrumentedHeap[T]) Order() hp.Order { return ih.heap.Order() }
func (ih *InstrumentedHeap[T]) Capacity() int   { return ih.heap.Capacity() }
func (ih *InstrumentedHeap[T]) Size() int       { return ih.heap.Size() }
func (ih *InstrumentedHeap[T]) String() string  { return ih.heap.String() }

func (ih *InstrumentedHeap[T]) Describe() ([]T, error) {
	return ih.heap.Describe()
}

func (ih *InstrumentedHeap[T]) Insert(ctx context.Context, v T) error {
	ctx, span := ih.tracer.Start(ctx, "heap.Insert", trace.WithAttributes(ih.metrics.attrs.ToSlice()...))
	defer span.End()
	l := loggerFrom(ctx)

	if err := ih.heap.Insert(v); err != nil {
		ih.reject(ctx, span, REASON_FULL, err)
		l.Error("heap insert rejected", "id", ih.id, "value", v, "capacity", ih.heap.Capacity(), "error", err.Error())
		return err
	}

	opt := metric.WithAttributeSet(ih.metrics.attrs)
	ih.metrics.inserts.Add(ctx, 1, opt)
	ih.metrics.size.Add(ctx, 1, opt)
	l.Debug("heap insert", "id", ih.id, "value", v, "size", ih.heap.Size())
	return nil
}

func (ih *InstrumentedHeap[T]) Extract(ctx context.Context) (T, error) {
	ctx, span := ih.tracer.Start(ctx, "heap.Extract", trace.WithAttributes(ih.metrics.attrs.ToSlice()...))
	defer span.End()
	l := loggerFrom(ctx)

	v, err := ih.heap.Extract()
	if err != nil {
		ih.reject(ctx, span, REASON_EMPTY, err)
		l.Error("heap extract rejected", "id", ih.id, "error", err.Error())
		return v, err
	}

	opt := metric.WithAttributeSet(ih.metrics.attrs)
	ih.metrics.extractions.Add(ctx, 1, opt)
	ih.metrics.size.Add(ctx, -1, opt)
	l.Debug("heap extract", "id", ih.id, "value", v, "size", ih.heap.Size())
	return v, nil
}

func (ih *InstrumentedHeap[T]) Peek(ctx context.Context) (T, error) {
	v, err := ih.heap.Peek()
	if err != nil {
		ih.metrics.rejections.Add(ctx, 1, metric.WithAttributeSet(ih.metrics.attrs), metric.WithAttributes(attribute.String(ATTR_REASON, REASON_EMPTY)))
		loggerFrom(ctx).Error("heap peek rejected", "id", ih.id, "error", err.Error())
		return v, err
	}
	return v, nil
}

// Reset empties the heap and brings the size gauge back to zero.
func (ih *InstrumentedHeap[T]) Reset(ctx context.Context) {
	n := ih.heap.Size()
	ih.heap.Reset()
	ih.metrics.size.Add(ctx, -int64(n), metric.WithAttributeSet(ih.metrics.attrs))
	loggerFrom(ctx).Debug("heap reset", "id", ih.id, "dropped", n)
}

func (ih *InstrumentedHeap[T]) reject(ctx context.Context, span trace.Span, reason string, err error) {
	ih.metrics.rejections.Add(ctx, 1, metric.WithAttributeSet(ih.metrics.attrs), metric.WithAttributes(attribute.String(ATTR_REASON, reason)))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func loggerFrom(ctx context.Context) logger.Logger {
	l, err := logger.LoggerFromContext(ctx)
	if err != nil {
		return logger.GetSlogLogger()
	}
	return l
}
