package admin

import (
	"context"
	"time"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/handler/view"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

type newArrivalRequest struct {
	ProductId string     `json:"productId"`
	DateAdded *time.Time `json:"dateAdded"`
	Featured  bool       `json:"featured"`
}

type bestSellingRequest struct {
	ProductId string  `json:"productId"`
	Sales     int     `json:"sales"`
	Revenue   float64 `json:"revenue"`
	Period    string  `json:"period"`
}

func (h *Handler) resolver(ctx context.Context) (catalog.Resolver, error) {
	products, err := h.repos.Products.List(ctx)
	if err != nil {
		return catalog.Resolver{}, err
	}
	return catalog.NewResolver(products), nil
}

func (h *Handler) listNewArrivals(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items    []model.NewArrival
		resolver catalog.Resolver
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		items, err = h.repos.NewArrivals.List(gctx)
		return
	})
	group.Go(func() (err error) {
		resolver, err = h.resolver(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", view.NewArrivals(items, resolver))
}

func (h *Handler) getNewArrival(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.repos.NewArrivals.GetById(ctx, c.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	resolver, err := h.resolver(ctx)
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", view.NewArrivals([]model.NewArrival{*item}, resolver)[0])
}

func (h *Handler) createNewArrival(c echo.Context) error {
	ctx := c.Request().Context()

	payload := newArrivalRequest{}
	if err := c.Bind(&payload); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	if err := h.checkProductRef(ctx, fields, "productId", payload.ProductId); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	item := model.NewArrival{ProductId: payload.ProductId, Featured: payload.Featured}
	if payload.DateAdded != nil {
		item.DateAdded = payload.DateAdded.UTC()
	}

	id, err := h.repos.NewArrivals.Create(ctx, item)
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteCreatedResponse(c, "new arrival created", createdResponse{Id: id})
}

func (h *Handler) updateNewArrival(c echo.Context) error {
	ctx := c.Request().Context()

	patch := model.NewArrivalPatch{}
	if err := c.Bind(&patch); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	if patch.ProductId != nil {
		if err := h.checkProductRef(ctx, fields, "productId", *patch.ProductId); err != nil {
			return response.WriteErrorResponse(c, err)
		}
	}
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	if err := h.repos.NewArrivals.Update(ctx, c.Param("id"), patch); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "new arrival updated", nil)
}

func (h *Handler) deleteNewArrival(c echo.Context) error {
	if err := h.repos.NewArrivals.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "new arrival deleted", nil)
}

func (h *Handler) listBestSelling(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items    []model.BestSelling
		resolver catalog.Resolver
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		items, err = h.repos.BestSelling.List(gctx)
		return
	})
	group.Go(func() (err error) {
		resolver, err = h.resolver(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", view.BestSellers(items, resolver))
}

func (h *Handler) getBestSelling(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.repos.BestSelling.GetById(ctx, c.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	resolver, err := h.resolver(ctx)
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", view.BestSellers([]model.BestSelling{*item}, resolver)[0])
}

func checkSales(fields validate.Fields, sales *int, revenue *float64) {
	if sales != nil {
		fields.Check(*sales >= 0, "sales", "must not be negative")
	}
	if revenue != nil {
		fields.Check(*revenue >= 0, "revenue", "must not be negative")
	}
}

func (h *Handler) createBestSelling(c echo.Context) error {
	ctx := c.Request().Context()

	payload := bestSellingRequest{}
	if err := c.Bind(&payload); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	if err := h.checkProductRef(ctx, fields, "productId", payload.ProductId); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	checkSales(fields, &payload.Sales, &payload.Revenue)
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	id, err := h.repos.BestSelling.Create(ctx, model.BestSelling{
		ProductId: payload.ProductId,
		Sales:     payload.Sales,
		Revenue:   payload.Revenue,
		Period:    payload.Period,
	})
	if err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteCreatedResponse(c, "best selling entry created", createdResponse{Id: id})
}

func (h *Handler) updateBestSelling(c echo.Context) error {
	ctx := c.Request().Context()

	patch := model.BestSellingPatch{}
	if err := c.Bind(&patch); err != nil {
		return response.WriteErrorResponse(c, bindError("body"))
	}

	fields := validate.New()
	if patch.ProductId != nil {
		if err := h.checkProductRef(ctx, fields, "productId", *patch.ProductId); err != nil {
			return response.WriteErrorResponse(c, err)
		}
	}
	checkSales(fields, patch.Sales, patch.Revenue)
	if err := fields.Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	if err := h.repos.BestSelling.Update(ctx, c.Param("id"), patch); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "best selling entry updated", nil)
}

func (h *Handler) deleteBestSelling(c echo.Context) error {
	if err := h.repos.BestSelling.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.WriteErrorResponse(c, err)
	}
	return response.WriteSuccessResponse(c, "best selling entry deleted", nil)
}
