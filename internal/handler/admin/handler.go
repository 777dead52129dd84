package admin

import (
	"context"
	"errors"
	"strings"

	ierr "go-firestore-catalog/internal/errors"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/middleware"
	"go-firestore-catalog/internal/repository"
	"go-firestore-catalog/internal/session"

	"github.com/labstack/echo/v4"
)

// Invalidator drops cached catalog data after a product write.
type Invalidator interface {
	Invalidate()
}

type Handler struct {
	repos    repository.Set
	sessions session.Manager
	cache    Invalidator
}

func New(repos repository.Set, sessions session.Manager, cache Invalidator) *Handler {
	return &Handler{
		repos:    repos,
		sessions: sessions,
		cache:    cache,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/admin/login", h.login)

	a := g.Group("/admin", middleware.RequireAdmin(h.sessions))
	a.GET("/session", h.currentSession)
	a.GET("/dashboard", h.dashboard)

	a.GET("/products", h.listProducts)
	a.GET("/products/export", h.exportProducts)
	a.GET("/products/:id", h.getProduct)
	a.POST("/products", h.createProduct)
	a.PATCH("/products/:id", h.updateProduct)
	a.PUT("/products/:id", h.updateProduct)
	a.DELETE("/products/:id", h.deleteProduct)

	a.GET("/new-arrivals", h.listNewArrivals)
	a.GET("/new-arrivals/:id", h.getNewArrival)
	a.POST("/new-arrivals", h.createNewArrival)
	a.PATCH("/new-arrivals/:id", h.updateNewArrival)
	a.DELETE("/new-arrivals/:id", h.deleteNewArrival)

	a.GET("/best-selling", h.listBestSelling)
	a.GET("/best-selling/:id", h.getBestSelling)
	a.POST("/best-selling", h.createBestSelling)
	a.PATCH("/best-selling/:id", h.updateBestSelling)
	a.DELETE("/best-selling/:id", h.deleteBestSelling)

	a.GET("/testimonials", h.listTestimonials)
	a.GET("/testimonials/:id", h.getTestimonial)
	a.POST("/testimonials", h.createTestimonial)
	a.PATCH("/testimonials/:id", h.updateTestimonial)
	a.DELETE("/testimonials/:id", h.deleteTestimonial)

	a.GET("/reviews", h.listReviews)
	a.POST("/reviews", h.createReview)
	a.DELETE("/reviews/:id", h.deleteReview)

	a.GET("/messages", h.listMessages)
	a.POST("/messages/read-all", h.markAllMessagesRead)
	a.PATCH("/messages/:id", h.updateMessage)
	a.DELETE("/messages/:id", h.deleteMessage)
}

type createdResponse struct {
	Id string `json:"id"`
}

// checkProductRef records a field error when productId is empty or unknown.
// Only unexpected store failures are returned.
func (h *Handler) checkProductRef(ctx context.Context, fields validate.Fields, field, productId string) error {
	if strings.TrimSpace(productId) == "" {
		fields.Required(field, productId)
		return nil
	}

	_, err := h.repos.Products.GetById(ctx, productId)
	if errors.Is(err, ierr.NotFound) {
		fields.Check(false, field, "unknown product")
		return nil
	}
	return err
}

func bindError(field string) error {
	return validate.Fields{field: "malformed request body"}.Err()
}
