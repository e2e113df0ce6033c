package env_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	envutils "github.com/hankgalt/heap-lab/pkg/utils/environment"
	hp "github.com/hankgalt/heap-lab/pkg/utils/heap"
)

func TestBuildHeapConfigDefaults(t *testing.T) {
	t.Setenv("HEAP_CAPACITY", "")
	t.Setenv("HEAP_ORDER", "")

	cfg, err := envutils.BuildHeapConfig()
	require.NoError(t, err)
	require.Equal(t, envutils.DEFAULT_CAPACITY, cfg.Capacity)
	require.Equal(t, []hp.Order{hp.MaxOrder, hp.MinOrder}, cfg.Orders)
}

func TestBuildHeapConfig(t *testing.T) {
	t.Setenv("HEAP_CAPACITY", "32")
	t.Setenv("HEAP_ORDER", "Min")

	cfg, err := envutils.BuildHeapConfig()
	require.NoError(t, err)
	require.Equal(t, 32, cfg.Capacity)
	require.Equal(t, []hp.Order{hp.MinOrder}, cfg.Orders)
}

func TestBuildHeapConfigErrors(t *testing.T) {
	t.Setenv("HEAP_ORDER", "")

	t.Setenv("HEAP_CAPACITY", "ten")
	_, err := envutils.BuildHeapConfig()
	require.Error(t, err)

	t.Setenv("HEAP_CAPACITY", "0")
	_, err = envutils.BuildHeapConfig()
	require.ErrorIs(t, err, hp.ErrInvalidCapacity)

	t.Setenv("HEAP_CAPACITY", "")
	t.Setenv("HEAP_ORDER", "sideways")
	_, err = envutils.BuildHeapConfig()
	require.ErrorIs(t, err, hp.ErrInvalidOrder)
}

func TestBuildMetricsConfig(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("METRICS_PORT", "")
	t.Setenv("OTEL_ENDPOINT", "")

	cfg := envutils.BuildMetricsConfig()
	require.Equal(t, envutils.DEFAULT_SERVICE_NAME, cfg.ServiceName)
	require.Empty(t, cfg.MetricsAddr)
	require.Empty(t, cfg.OTLPEndpoint)

	t.Setenv("SERVICE_NAME", "heaps")
	t.Setenv("METRICS_PORT", "9464")
	t.Setenv("OTEL_ENDPOINT", "otel-collector:4317")

	cfg = envutils.BuildMetricsConfig()
	require.Equal(t, "heaps", cfg.ServiceName)
	require.Equal(t, ":9464", cfg.MetricsAddr)
	require.Equal(t, "otel-collector:4317", cfg.OTLPEndpoint)
}
