package server

import (
	"context"
	"errors"
	"net/http"

	"go-firestore-catalog/internal/config"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/middleware"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const APIPrefix = "/api/v1"

type RouteRegistrar interface {
	RegisterRoutes(g *echo.Group)
}

// Server runs the API and the prometheus metrics on separate listeners.
type Server struct {
	cnf     config.Server
	api     *echo.Echo
	metrics *echo.Echo
}

func New(cnf config.Server, tracer trace.Tracer, handlers ...RouteRegistrar) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api := echo.New()
	api.HideBanner = true
	api.HidePort = true
	api.HTTPErrorHandler = response.HTTPErrorHandler

	api.Use(echomw.Recover())
	api.Use(echomw.CORS())
	api.Use(middleware.Logger)
	api.Use(middleware.Tracing(tracer))
	api.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer: registry,
	}))

	g := api.Group(APIPrefix)
	for _, h := range handlers {
		h.RegisterRoutes(g)
	}

	metrics := echo.New()
	metrics.HideBanner = true
	metrics.HidePort = true
	metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))

	return &Server{
		cnf:     cnf,
		api:     api,
		metrics: metrics,
	}
}

func (s *Server) Handler() http.Handler {
	return s.api
}

func (s *Server) MetricsHandler() http.Handler {
	return s.metrics
}

// Start serves until ctx is done, then shuts both listeners down.
func (s *Server) Start(ctx context.Context) error {
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Str("addr", s.cnf.Addr).Msg("api server listening")
		if err := s.api.Start(s.cnf.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		log.Info().Str("addr", s.cnf.MetricsAddr).Msg("metrics server listening")
		if err := s.metrics.Start(s.cnf.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		return s.Shutdown()
	})

	return group.Wait()
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cnf.ShutdownTimeout)
	defer cancel()

	return errors.Join(s.api.Shutdown(ctx), s.metrics.Shutdown(ctx))
}
