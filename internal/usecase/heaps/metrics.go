package heaps

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	METRIC_INSERTS     = "heap.inserts"
	METRIC_EXTRACTIONS = "heap.extractions"
	METRIC_REJECTIONS  = "heap.rejections"
	METRIC_SIZE        = "heap.size"
)

const (
	ATTR_ORDER  = "heap.order"
	ATTR_ID     = "heap.id"
	ATTR_REASON = "reason"

	REASON_FULL  = "full"
	REASON_EMPTY = "empty"
)

type heapMetrics struct {
	inserts     metric.Int64Counter
	extractions metric.Int64Counter
	rejections  metric.Int64Counter
	size        metric.Int64UpDownCounter
	attrs       attribute.Set
}

func newHeapMetrics(meter metric.Meter, attrs ...attribute.KeyValue) (*heapMetrics, error) {
	inserts, err := meter.Int64Counter(METRIC_INSERTS, metric.WithDescription("Accepted inserts"))
	if err != nil {
		return nil, err
	}
	extractions, err := meter.Int64Counter(METRIC_EXTRACTIONS, metric.WithDescription("Removed roots"))
	if err != nil {
		return nil, err
	}
	rejections, err := meter.Int64Counter(METRIC_REJECTIONS, metric.WithDescription("Inserts into a full heap and reads of an empty heap"))
	if err != nil {
		return nil, err
	}
	size, err := meter.Int64UpDownCounter(METRIC_SIZE, metric.WithDescription("Live elements"))
	if err != nil {
		return nil, err
	}

	return &heapMetrics{
		inserts:     inserts,
		extractions: extractions,
		rejections:  rejections,
		size:        size,
		attrs:       attribute.NewSet(attrs...),
	}, nil
}
