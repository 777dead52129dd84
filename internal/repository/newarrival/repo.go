package newarrival

import (
	"context"
	"time"

	"go-firestore-catalog/internal/database"
	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository/document"
	"go-firestore-catalog/internal/repository/filter"

	"cloud.google.com/go/firestore"
)

type NewArrivalRepository struct {
	docs document.Collection[model.NewArrival]
}

var _ IRepository = NewArrivalRepository{}

func New(db database.Client) NewArrivalRepository {
	return NewArrivalRepository{
		docs: document.New(db, newArrivalNode, "new arrival", func(n *model.NewArrival, id string) {
			n.Id = id
		}),
	}
}

func (r NewArrivalRepository) List(ctx context.Context) ([]model.NewArrival, error) {
	return r.docs.List(ctx, nil, []filter.OrderBy{{Path: DateAddedFieldPath, Direction: firestore.Desc}})
}

func (r NewArrivalRepository) GetById(ctx context.Context, id string) (*model.NewArrival, error) {
	return r.docs.Get(ctx, id)
}

func (r NewArrivalRepository) Create(ctx context.Context, data model.NewArrival) (string, error) {
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt
	if data.DateAdded.IsZero() {
		data.DateAdded = data.CreatedAt
	}
	return r.docs.Create(ctx, data)
}

func (r NewArrivalRepository) Update(ctx context.Context, id string, patch model.NewArrivalPatch) error {
	updates := PatchUpdates(patch)
	updates = append(updates, firestore.Update{Path: UpdatedAtFieldPath, Value: time.Now().UTC()})
	return r.docs.Update(ctx, id, updates)
}

func (r NewArrivalRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, id)
}

// PatchUpdates translates the non-nil fields of the patch into firestore updates.
func PatchUpdates(patch model.NewArrivalPatch) []firestore.Update {
	updates := []firestore.Update{}

	if patch.ProductId != nil {
		updates = append(updates, firestore.Update{Path: ProductIdFieldPath, Value: *patch.ProductId})
	}
	if patch.DateAdded != nil {
		updates = append(updates, firestore.Update{Path: DateAddedFieldPath, Value: *patch.DateAdded})
	}
	if patch.Featured != nil {
		updates = append(updates, firestore.Update{Path: FeaturedFieldPath, Value: *patch.Featured})
	}

	return updates
}
