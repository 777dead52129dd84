package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-firestore-catalog/internal/config"
	"go-firestore-catalog/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newAdminApp(t *testing.T) (*echo.Echo, session.Manager) {
	t.Helper()

	m := session.NewManager(config.Admin{
		Email:         "admin@example.com",
		Password:      "s3cret",
		SessionSecret: "key",
		SessionTTL:    time.Hour,
	})

	e := echo.New()
	e.GET("/admin/session", func(c echo.Context) error {
		s, ok := session.FromContext(c.Request().Context())
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, s.Email)
	}, RequireAdmin(m))
	return e, m
}

func TestRequireAdmin(t *testing.T) {
	e, m := newAdminApp(t)
	token, _, err := m.Login("admin@example.com", "s3cret")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			if tc.code == http.StatusOK {
				assert.Equal(t, "admin@example.com", rec.Body.String())
			}
		})
	}
}

func TestLogger_AttachesRequestId(t *testing.T) {
	e := echo.New()
	e.Use(Logger)
	e.GET("/ping", func(c echo.Context) error {
		assert.NotNil(t, log.Ctx(c.Request().Context()))
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "given-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(echo.HeaderXRequestID))
}

func TestTracing_PassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Tracing(noop.NewTracerProvider().Tracer("test")))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
