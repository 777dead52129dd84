package bestselling

import (
	"context"
	"time"

	"go-firestore-catalog/internal/database"
	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository/document"
	"go-firestore-catalog/internal/repository/filter"

	"cloud.google.com/go/firestore"
)

type BestSellingRepository struct {
	docs document.Collection[model.BestSelling]
}

var _ IRepository = BestSellingRepository{}

func New(db database.Client) BestSellingRepository {
	return BestSellingRepository{
		docs: document.New(db, bestSellingNode, "best selling", func(b *model.BestSelling, id string) {
			b.Id = id
		}),
	}
}

// List returns the entries with the highest sales first.
func (r BestSellingRepository) List(ctx context.Context) ([]model.BestSelling, error) {
	return r.docs.List(ctx, nil, []filter.OrderBy{{Path: SalesFieldPath, Direction: firestore.Desc}})
}

func (r BestSellingRepository) GetById(ctx context.Context, id string) (*model.BestSelling, error) {
	return r.docs.Get(ctx, id)
}

func (r BestSellingRepository) Create(ctx context.Context, data model.BestSelling) (string, error) {
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt
	return r.docs.Create(ctx, data)
}

func (r BestSellingRepository) Update(ctx context.Context, id string, patch model.BestSellingPatch) error {
	updates := PatchUpdates(patch)
	updates = append(updates, firestore.Update{Path: UpdatedAtFieldPath, Value: time.Now().UTC()})
	return r.docs.Update(ctx, id, updates)
}

func (r BestSellingRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, id)
}

// PatchUpdates translates the non-nil fields of the patch into firestore updates.
func PatchUpdates(patch model.BestSellingPatch) []firestore.Update {
	updates := []firestore.Update{}

	if patch.ProductId != nil {
		updates = append(updates, firestore.Update{Path: ProductIdFieldPath, Value: *patch.ProductId})
	}
	if patch.Sales != nil {
		updates = append(updates, firestore.Update{Path: SalesFieldPath, Value: *patch.Sales})
	}
	if patch.Revenue != nil {
		updates = append(updates, firestore.Update{Path: RevenueFieldPath, Value: *patch.Revenue})
	}
	if patch.Period != nil {
		updates = append(updates, firestore.Update{Path: PeriodFieldPath, Value: *patch.Period})
	}

	return updates
}
