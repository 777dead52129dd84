package storefront

import (
	"strings"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/handler/view"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type createdResponse struct {
	Id string `json:"id"`
}

func (h *Handler) newArrivals(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items    []model.NewArrival
		products []model.Product
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		items, err = h.repos.NewArrivals.List(gctx)
		return
	})
	group.Go(func() (err error) {
		products, err = h.catalog.Products(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", view.NewArrivals(items, catalog.NewResolver(products)))
}

func (h *Handler) bestSelling(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items    []model.BestSelling
		products []model.Product
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		items, err = h.repos.BestSelling.List(gctx)
		return
	})
	group.Go(func() (err error) {
		products, err = h.catalog.Products(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", view.BestSellers(items, catalog.NewResolver(products)))
}

func (h *Handler) testimonials(c echo.Context) error {
	featured, err := validate.OptionalBool(c.QueryParam("featured"))
	if err != nil {
		return response.WriteErrorResponse(c, validate.Fields{"featured": "must be true or false"}.Err())
	}

	items, err := h.repos.Testimonials.List(c.Request().Context(), featured)
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "", items)
}

func (h *Handler) contact(c echo.Context) error {
	ctx := c.Request().Context()

	payload := contactRequest{}
	if err := c.Bind(&payload); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "contact").Msg("")
		return response.WriteErrorResponse(c, validate.Fields{"body": "must be a JSON message"}.Err())
	}

	fields := validate.New()
	fields.Required("name", payload.Name)
	fields.Email("email", payload.Email)
	fields.Required("message", payload.Message)
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	id, err := h.repos.Messages.Create(ctx, model.ContactEmail{
		Name:    strings.TrimSpace(payload.Name),
		Email:   strings.TrimSpace(payload.Email),
		Phone:   strings.TrimSpace(payload.Phone),
		Subject: strings.TrimSpace(payload.Subject),
		Message: strings.TrimSpace(payload.Message),
	})
	if err != nil {
		return response.WriteErrorResponseWithMessage(c, err, "failed to send message")
	}

	return response.WriteCreatedResponse(c, "message sent", createdResponse{Id: id})
}
