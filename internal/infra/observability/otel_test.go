package observability_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/comfforts/logger"
	"github.com/stretchr/testify/require"

	"github.com/hankgalt/heap-lab/internal/infra/observability"
)

func TestInitServesMetrics(t *testing.T) {
	l := logger.GetSlogLogger()
	ctx := logger.WithLogger(context.Background(), l)

	tel, err := observability.Init(ctx, observability.InitOptions{
		ServiceName: "heap-test",
		MetricsAddr: "127.0.0.1:0",
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, tel.Shutdown(context.Background()))
	}()
	require.NotEmpty(t, tel.MetricsAddr)
	require.Nil(t, tel.TracerProvider)

	counter, err := tel.MeterProvider.Meter("observability_test").Int64Counter("probe.hits")
	require.NoError(t, err)
	counter.Add(ctx, 3)

	resp, err := http.Get(fmt.Sprintf("http://%s%s", tel.MetricsAddr, observability.DEFAULT_METRICS_HANDLE))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "probe_hits")
}

func TestInitWithoutEndpoints(t *testing.T) {
	tel, err := observability.Init(context.Background(), observability.InitOptions{ServiceName: "heap-test"})
	require.NoError(t, err)
	require.Empty(t, tel.MetricsAddr)
	require.NotNil(t, tel.Registry)
	require.NoError(t, tel.Shutdown(context.Background()))
}
