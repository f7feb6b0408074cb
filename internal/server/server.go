// Package server is the HTTP side door of the engine: health checks and the Prometheus scrape
// endpoint. Queries go through the gRPC server.
package server

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"net/http"
	"time"
)

//go:generate mockgen -destination=server_mock.go -package=server -source=server.go

const (
	serverName      = "LiteTable http server"
	shutdownTimeout = 5 * time.Second
)

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Addr() string
}

// echoServer adapts an echo instance to httpServer.
type echoServer struct {
	e    *echo.Echo
	addr string
}

func (s *echoServer) ListenAndServe() error {
	return s.e.Start(s.addr)
}

func (s *echoServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *echoServer) Addr() string {
	return s.addr
}

type Server struct {
	address string
	port    int
	server  httpServer
}

type Config struct {
	Address string
	Port    int
	// Gatherer backs /metrics. The endpoint is not mounted when nil.
	Gatherer prometheus.Gatherer
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errGrp = append(errGrp, errors.New("port must be between 1 and 65535"))
	}
	return errors.Join(errGrp...)
}

// New builds the HTTP server. It does not listen until Start.
func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer,
			promhttp.HandlerOpts{})))
	}

	return &Server{
		address: cfg.Address,
		port:    cfg.Port,
		server: &echoServer{
			e:    e,
			addr: fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		},
	}, nil
}

func (s *Server) Start() error {
	log.Info().Msgf("http server listening at %s", s.server.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	// Block briefly for a bind failure
	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("http server failed")
		}
		return err
	case <-time.After(500 * time.Millisecond):
		return nil
	}
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	return nil
}

func (s *Server) Name() string {
	return serverName
}
