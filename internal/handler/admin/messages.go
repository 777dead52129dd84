package admin

import (
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type messagesResponse struct {
	Unread   int                  `json:"unread"`
	Messages []model.ContactEmail `json:"messages"`
}

type messagePatch struct {
	Read *bool `json:"read"`
}

type markAllReadResponse struct {
	Updated int `json:"updated"`
}

func (h *Handler) listMessages(c echo.Context) error {
	messages, err := h.repos.Messages.List(c.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}
	return response.WriteSuccessResponse(c, "", messagesResponse{Unread: unread, Messages: messages})
}

func (h *Handler) updateMessage(c echo.Context) error {
	payload := messagePatch{}
	if err := c.Bind(&payload); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	fields.Check(payload.Read != nil, "read", "is required")
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	if err := h.repos.Messages.SetRead(c.Request().Context(), c.Param("id"), *payload.Read); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "message updated", nil)
}

func (h *Handler) markAllMessagesRead(c echo.Context) error {
	ctx := c.Request().Context()

	updated, err := h.repos.Messages.MarkAllRead(ctx)
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}

	log.Ctx(ctx).Info().Int("updated", updated).Msg("messages marked as read")
	return response.WriteSuccessResponse(c, "messages marked as read", markAllReadResponse{Updated: updated})
}

func (h *Handler) deleteMessage(c echo.Context) error {
	if err := h.repos.Messages.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "message deleted", nil)
}
