package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-firestore-catalog/internal/config"
	"go-firestore-catalog/internal/handler/response"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(g *echo.Group) {
	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})
}

func newServer() *Server {
	return New(config.Server{Addr: ":0", MetricsAddr: ":0", ShutdownTimeout: time.Second},
		noop.NewTracerProvider().Tracer("test"), pingRoutes{})
}

func TestServer_RoutesUnderPrefix(t *testing.T) {
	s := newServer()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, response.StatusError, body.Status)
}

func TestServer_MetricsCountRequests(t *testing.T) {
	s := newServer()

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	rec := httptest.NewRecorder()
	s.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "requests_total"), "request counter exported")
}

func TestServer_StandaloneInstances(t *testing.T) {
	assert.NotPanics(t, func() {
		newServer()
		newServer()
	}, "each server owns its metrics registry")
}
