package middleware

import (
	"fmt"
	"strings"

	ierr "go-firestore-catalog/internal/errors"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/session"

	"github.com/labstack/echo/v4"
)

type SessionParser interface {
	Parse(token string) (session.Session, error)
}

// RequireAdmin rejects requests without a valid bearer session and stores the session in the request context.
func RequireAdmin(sessions SessionParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return response.WriteErrorResponse(c, fmt.Errorf("admin session: %w, missing bearer token", ierr.Unauthorized))
			}

			s, err := sessions.Parse(strings.TrimSpace(token))
			if err != nil {
				return response.WriteErrorResponse(c, err)
			}

			ctx := session.WithSession(c.Request().Context(), s)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
