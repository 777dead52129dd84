package review

import (
	"context"
	"sort"
	"time"

	"go-firestore-catalog/internal/database"
	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository/document"
	"go-firestore-catalog/internal/repository/filter"
	"go-firestore-catalog/internal/repository/ops"

	"cloud.google.com/go/firestore"
)

type ReviewRepository struct {
	docs document.Collection[model.Review]
}

var _ IRepository = ReviewRepository{}

func New(db database.Client) ReviewRepository {
	return ReviewRepository{
		docs: document.New(db, reviewNode, "review", func(r *model.Review, id string) {
			r.Id = id
		}),
	}
}

func (r ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	return r.docs.List(ctx, nil, []filter.OrderBy{{Path: CreatedAtFieldPath, Direction: firestore.Desc}})
}

// ListByProduct returns the reviews of a product, newest first.
// Sorting happens here so the equality query needs no composite index.
func (r ReviewRepository) ListByProduct(ctx context.Context, productId string) ([]model.Review, error) {
	reviews, err := r.docs.List(ctx, []filter.Where{{Path: ProductIdFieldPath, Op: ops.Equal, Value: productId}}, nil)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r ReviewRepository) Create(ctx context.Context, data model.Review) (string, error) {
	data.CreatedAt = time.Now().UTC()
	return r.docs.Create(ctx, data)
}

func (r ReviewRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, id)
}
