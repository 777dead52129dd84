package storefront

import (
	"context"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository"

	"github.com/labstack/echo/v4"
)

type ProductSource interface {
	Products(ctx context.Context) ([]model.Product, error)
}

type Handler struct {
	repos   repository.Set
	catalog ProductSource
	ranker  catalog.Ranker
}

func New(repos repository.Set, products ProductSource, ranker catalog.Ranker) *Handler {
	return &Handler{
		repos:   repos,
		catalog: products,
		ranker:  ranker,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/ping", h.ping)
	g.GET("/categories", h.categories)

	g.GET("/products", h.listProducts)
	g.GET("/products/:id", h.getProduct)
	g.GET("/products/:id/reviews", h.listReviews)
	g.POST("/products/:id/reviews", h.submitReview)

	g.GET("/new-arrivals", h.newArrivals)
	g.GET("/best-selling", h.bestSelling)
	g.GET("/testimonials", h.testimonials)

	g.POST("/contact", h.contact)
}
