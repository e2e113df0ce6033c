package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comfforts/logger"

	"github.com/hankgalt/heap-lab/internal/infra/observability"
	"github.com/hankgalt/heap-lab/internal/usecase/heaps"
	envutils "github.com/hankgalt/heap-lab/pkg/utils/environment"
)

const METER_NAME = "heapdemo"

func main() {
	// initialize app logger instance
	l := logger.GetSlogLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, l)

	heapCfg, err := envutils.BuildHeapConfig()
	if err != nil {
		l.Error("error building heap config", "error", err.Error())
		panic(err)
	}
	metricsCfg := envutils.BuildMetricsConfig()

	tel, err := observability.Init(ctx, observability.InitOptions{
		ServiceName:  metricsCfg.ServiceName,
		MetricsAddr:  metricsCfg.MetricsAddr,
		OTLPEndpoint: metricsCfg.OTLPEndpoint,
	})
	if err != nil {
		l.Error("error initializing observability", "error", err.Error())
		panic(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			l.Error("error shutting down observability", "error", err.Error())
		}
	}()

	meter := tel.MeterProvider.Meter(METER_NAME)
	for _, order := range heapCfg.Orders {
		h, err := heaps.NewInstrumentedHeap[int](heapCfg.Capacity, order, meter)
		if err != nil {
			l.Error("error creating heap", "order", order.String(), "error", err.Error())
			return
		}
		l.Info("running heap demo", "order", order.String(), "capacity", heapCfg.Capacity, "heap-id", h.ID())

		if err := heaps.RunDemo(ctx, os.Stdout, h); err != nil {
			l.Error("heap demo failed", "order", order.String(), "error", err.Error())
			return
		}
	}

	// keep serving /metrics until interrupted when an endpoint was requested
	if tel.MetricsAddr != "" {
		l.Info("demo done, serving metrics until interrupted", "address", tel.MetricsAddr)
		<-ctx.Done()
	}
}
