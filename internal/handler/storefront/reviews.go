package storefront

import (
	"strings"

	"go-firestore-catalog/internal/catalog"
	"go-firestore-catalog/internal/handler/response"
	"go-firestore-catalog/internal/handler/validate"
	"go-firestore-catalog/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const submitReviewFailure = "failed to submit review"

type reviewRequest struct {
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type reviewsResponse struct {
	Stats   model.ReviewStats `json:"stats"`
	Reviews []model.Review    `json:"reviews"`
}

type submitReviewResponse struct {
	ReviewId string            `json:"reviewId"`
	Stats    model.ReviewStats `json:"stats"`
	Reviews  []model.Review    `json:"reviews"`
}

func (h *Handler) listReviews(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var reviews []model.Review

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		_, err := h.repos.Products.GetById(gctx, id)
		return err
	})
	group.Go(func() (err error) {
		reviews, err = h.repos.Reviews.ListByProduct(gctx, id)
		return
	})
	if err := group.Wait(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	return response.WriteSuccessResponse(c, "", reviewsResponse{
		Stats:   catalog.Aggregate(reviews),
		Reviews: reviews,
	})
}

func (h *Handler) submitReview(c echo.Context) error {
	ctx := c.Request().Context()
	productId := c.Param("id")

	payload := reviewRequest{}
	if err := c.Bind(&payload); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "submitReview").Msg("")
		return response.WriteErrorResponse(c, validate.Fields{"body": "must be a JSON review"}.Err())
	}

	if err := validate.Review(payload.AuthorName, payload.Rating).Err(); err != nil {
		return response.WriteErrorResponse(c, err)
	}

	if _, err := h.repos.Products.GetById(ctx, productId); err != nil {
		return response.WriteErrorResponseWithMessage(c, err, submitReviewFailure)
	}

	reviewId, err := h.repos.Reviews.Create(ctx, model.Review{
		ProductId:  productId,
		AuthorName: strings.TrimSpace(payload.AuthorName),
		Rating:     payload.Rating,
		Comment:    strings.TrimSpace(payload.Comment),
		Verified:   false,
	})
	if err != nil {
		return response.WriteErrorResponseWithMessage(c, err, submitReviewFailure)
	}

	// reload instead of appending so the stats reflect what is stored
	reviews, err := h.repos.Reviews.ListByProduct(ctx, productId)
	if err != nil {
		return response.WriteErrorResponseWithMessage(c, err, submitReviewFailure)
	}

	log.Ctx(ctx).Info().Str("productId", productId).Str("reviewId", reviewId).Msg("review submitted")

	return response.WriteCreatedResponse(c, "review submitted", submitReviewResponse{
		ReviewId: reviewId,
		Stats:    catalog.Aggregate(reviews),
		Reviews:  reviews,
	})
}
