package admin

import (
	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

type dashboardStats struct {
	Products          int     `json:"products"`
	FeaturedProducts  int     `json:"featuredProducts"`
	Reviews           int     `json:"reviews"`
	AverageRating     float64 `json:"averageRating"`
	NewArrivals       int     `json:"newArrivals"`
	BestSelling       int     `json:"bestSelling"`
	Testimonials      int     `json:"testimonials"`
	Messages          int     `json:"messages"`
	UnreadMessages    int     `json:"unreadMessages"`
	MissingReferences int     `json:"missingReferences"`
}

// dashboard loads every collection concurrently and fails as a whole if any load fails.
func (h *Handler) dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products     []model.Product
		reviews      []model.Review
		newArrivals  []model.NewArrival
		bestSelling  []model.BestSelling
		testimonials []model.Testimonial
		messages     []model.ContactEmail
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		products, err = h.repos.Products.List(gctx)
		return
	})
	group.Go(func() (err error) {
		reviews, err = h.repos.Reviews.List(gctx)
		return
	})
	group.Go(func() (err error) {
		newArrivals, err = h.repos.NewArrivals.List(gctx)
		return
	})
	group.Go(func() (err error) {
		bestSelling, err = h.repos.BestSelling.List(gctx)
		return
	})
	group.Go(func() (err error) {
		testimonials, err = h.repos.Testimonials.List(gctx, nil)
		return
	})
	group.Go(func() (err error) {
		messages, err = h.repos.Messages.List(gctx)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	stats := dashboardStats{
		Products:      len(products),
		Reviews:       len(reviews),
		AverageRating: catalog.Aggregate(reviews).AverageRating,
		NewArrivals:   len(newArrivals),
		BestSelling:   len(bestSelling),
		Testimonials:  len(testimonials),
		Messages:      len(messages),
	}
	for _, p := range products {
		if p.Featured {
			stats.FeaturedProducts++
		}
	}
	for _, m := range messages {
		if !m.Read {
			stats.UnreadMessages++
		}
	}

	resolver := catalog.NewResolver(products)
	for _, n := range newArrivals {
		if catalog.IsMissing(resolver.Resolve(n.ProductId)) {
			stats.MissingReferences++
		}
	}
	for _, b := range bestSelling {
		if catalog.IsMissing(resolver.Resolve(b.ProductId)) {
			stats.MissingReferences++
		}
	}

	return response.WriteSuccessResponse(c, "", stats)
}
