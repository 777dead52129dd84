package response

import (
	"errors"
	"net/http"

	ierr "go-firestore-catalog/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type DataWithPagination struct {
	Records    interface{} `json:"records"`
	Pagination Pagination  `json:"pagination"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return write(c, http.StatusOK, message, data)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return write(c, http.StatusCreated, message, data)
}

func write(c echo.Context, code int, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = StatusSuccess
	resp.Message = message
	resp.Data = data

	return c.JSON(code, resp)
}

// WriteErrorResponse maps err to a status code. Unexpected errors are logged and
// answered with a generic message.
func WriteErrorResponse(c echo.Context, err error) error {
	return WriteErrorResponseWithMessage(c, err, ierr.OperationFailed.Error())
}

// WriteErrorResponseWithMessage is WriteErrorResponse with a custom message for unexpected errors.
func WriteErrorResponseWithMessage(c echo.Context, err error, failure string) error {
	resp := ErrorResponse{Status: StatusError}

	var validationErr ierr.ValidationError
	code := http.StatusInternalServerError

	switch {
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		resp.Message = ierr.ValidationFailed.Error()
		resp.Errors = validationErr.Fields
	case errors.Is(err, ierr.ValidationFailed):
		code = http.StatusBadRequest
		resp.Message = ierr.ValidationFailed.Error()
	case errors.Is(err, ierr.NotFound):
		code = http.StatusNotFound
		resp.Message = ierr.NotFound.Error()
	case errors.Is(err, ierr.Unauthorized):
		code = http.StatusUnauthorized
		resp.Message = ierr.Unauthorized.Error()
	default:
		log.Ctx(c.Request().Context()).Error().Err(err).
			Str("method", c.Request().Method).
			Str("endpoint", c.Path()).
			Msg("request failed")
		resp.Message = failure
	}

	return c.JSON(code, resp)
}

// HTTPErrorHandler renders echo's own errors (unknown route, bad method, bind failures) in the envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		if err := c.JSON(he.Code, ErrorResponse{Status: StatusError, Message: message}); err != nil {
			log.Error().Err(err).Msg("write error response")
		}
		return
	}

	if err := WriteErrorResponse(c, err); err != nil {
		log.Error().Err(err).Msg("write error response")
	}
}
