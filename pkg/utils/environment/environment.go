package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	hp "github.com/hankgalt/heap-lab/pkg/utils/heap"
)

const DEFAULT_CAPACITY = 10
const DEFAULT_SERVICE_NAME string = "heap-demo"
const ORDER_BOTH string = "both"

// HeapConfig drives the demo binary.
type HeapConfig struct {
	Capacity int
	Orders   []hp.Order
}

type MetricsConfig struct {
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
}

// BuildHeapConfig reads HEAP_CAPACITY and HEAP_ORDER ("max", "min" or "both"), falling back to
// DEFAULT_CAPACITY and both orders.
func BuildHeapConfig() (HeapConfig, error) {
	capacity := DEFAULT_CAPACITY
	if v := os.Getenv("HEAP_CAPACITY"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil {
			return HeapConfig{}, fmt.Errorf("invalid HEAP_CAPACITY %q: %w", v, err)
		}
		if c <= 0 {
			return HeapConfig{}, fmt.Errorf("invalid HEAP_CAPACITY %q: %w", v, hp.ErrInvalidCapacity)
		}
		capacity = c
	}

	orders, err := BuildOrders(os.Getenv("HEAP_ORDER"))
	if err != nil {
		return HeapConfig{}, err
	}

	return HeapConfig{
		Capacity: capacity,
		Orders:   orders,
	}, nil
}

// BuildOrders parses an order setting, empty or "both" meaning max then min.
func BuildOrders(s string) ([]hp.Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == ORDER_BOTH {
		return []hp.Order{hp.MaxOrder, hp.MinOrder}, nil
	}

	o, err := hp.ParseOrder(s)
	if err != nil {
		return nil, fmt.Errorf("invalid HEAP_ORDER %q: %w", s, err)
	}
	return []hp.Order{o}, nil
}

// BuildMetricsConfig reads SERVICE_NAME, METRICS_PORT and OTEL_ENDPOINT.
// An unset METRICS_PORT or OTEL_ENDPOINT disables that exporter.
func BuildMetricsConfig() MetricsConfig {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = DEFAULT_SERVICE_NAME
	}

	metricsAddr := ""
	if metricsPort := os.Getenv("METRICS_PORT"); metricsPort != "" {
		metricsAddr = fmt.Sprintf(":%s", metricsPort)
	}

	return MetricsConfig{
		ServiceName:  serviceName,
		MetricsAddr:  metricsAddr,
		OTLPEndpoint: os.Getenv("OTEL_ENDPOINT"),
	}
}
