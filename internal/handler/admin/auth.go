package admin

import (
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}

func (h *Handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	payload := loginRequest{}
	if err := c.Bind(&payload); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	fields.Required("email", payload.Email)
	fields.Required("password", payload.Password)
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	token, s, err := h.sessions.Login(payload.Email, payload.Password)
	if err != nil {
		log.Ctx(ctx).Warn().Str("email", payload.Email).Msg("admin login rejected")
		return response.WriteErrorResponse(c, err)
	}

	log.Ctx(ctx).Info().Str("sessionId", s.Id).Msg("admin logged in")
	return response.WriteSuccessResponse(c, "logged in", loginResponse{Token: token, Session: s})
}

func (h *Handler) currentSession(c echo.Context) error {
	s, _ := session.FromContext(c.Request().Context())
	return response.WriteSuccessResponse(c, "", s)
}
