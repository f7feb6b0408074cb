package main

import (
	"context"
	"github.com/litetable/litetable-analytics/internal/app"
	"github.com/litetable/litetable-analytics/internal/config"
	"github.com/litetable/litetable-analytics/internal/metrics"
	"github.com/litetable/litetable-analytics/internal/operations"
	"github.com/litetable/litetable-analytics/internal/schema"
	"github.com/litetable/litetable-analytics/internal/server"
	"github.com/litetable/litetable-analytics/internal/server/grpc"
	"github.com/litetable/litetable-analytics/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"os"
	"time"
)

func main() {
	application, err := initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}

	if err = application.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("application exited with error")
	}
}

func initialize() (*app.App, error) {
	var deps []app.Dependency

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	catalog := schema.DefaultCatalog()

	// every family in the catalog exists, empty, from the start
	store, err := storage.New(&storage.Config{
		Families: catalog.Families(),
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, store)

	recorder := metrics.New()

	opsManager, err := operations.New(&operations.Config{
		Catalog: catalog,
		Storage: store,
		Metrics: recorder,
		Aggregation: operations.AggregationConfig{
			DefaultDimension:  cfg.Aggregation.DefaultDimension,
			DefaultMetric:     cfg.Aggregation.DefaultMetric,
			SkipUnmatchedRows: cfg.Aggregation.SkipUnmatchedRows,
		},
	})
	if err != nil {
		return nil, err
	}

	grpcServer, err := grpc.NewServer(&grpc.Config{
		Address:    cfg.ServerAddress,
		Port:       cfg.GRPCPort,
		Operations: opsManager,
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, grpcServer)

	httpServer, err := server.New(&server.Config{
		Address:  cfg.ServerAddress,
		Port:     cfg.MetricsPort,
		Gatherer: recorder.Registry(),
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, httpServer)

	return app.CreateApp(&app.Config{
		ServiceName: "LiteTable Analytics",
		StopTimeout: cfg.StopTimeout(),
	}, deps...)
}
