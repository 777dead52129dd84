package admin

import (
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
)

type testimonialRequest struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Company  string `json:"company"`
	Logo     string `json:"logo"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

func (h *Handler) listTestimonials(c echo.Context) error {
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

func (h *Handler) getTestimonial(c echo.Context) error {
	item, err := h.repos.Testimonials.GetById(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "", item)
}

func (h *Handler) createTestimonial(c echo.Context) error {
	payload := testimonialRequest{}
	if err := c.Bind(&payload); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	fields.Required("quote", payload.Quote)
	fields.Required("author", payload.Author)
	fields.Between("rating", payload.Rating, 1, 5)
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	id, err := h.repos.Testimonials.Create(c.Request().Context(), model.Testimonial{
		Quote:    payload.Quote,
		Author:   payload.Author,
		Company:  payload.Company,
		Logo:     payload.Logo,
		Rating:   payload.Rating,
		Featured: payload.Featured,
	})
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteCreatedResponse(c, "testimonial created", createdResponse{Id: id})
}

func (h *Handler) updateTestimonial(c echo.Context) error {
	patch := model.TestimonialPatch{}
	if err := c.Bind(&patch); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	if patch.Quote != nil {
		fields.Required("quote", *patch.Quote)
	}
	if patch.Author != nil {
		fields.Required("author", *patch.Author)
	}
	if patch.Rating != nil {
		fields.Between("rating", *patch.Rating, 1, 5)
	}
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	if err := h.repos.Testimonials.Update(c.Request().Context(), c.Param("id"), patch); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "testimonial updated", nil)
}

func (h *Handler) deleteTestimonial(c echo.Context) error {
	if err := h.repos.Testimonials.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "testimonial deleted", nil)
}
