package product

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go-firestore-catalog/internal/database"
	"go-firestore-catalog/internal/eventpublisher/event"
	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository/document"
	"go-firestore-catalog/internal/repository/filter"
	"go-firestore-catalog/internal/repository/helper"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
)

type ProductRepository struct {
	db   database.Client
	docs document.Collection[model.Product]
}

var (
	_ IRepository = ProductRepository{}
	_ Notifier    = ProductRepository{}
)

func New(db database.Client) ProductRepository {
	return ProductRepository{
		db: db,
		docs: document.New(db, productNode, "product", func(p *model.Product, id string) {
			p.Id = id
		}),
	}
}

func (r ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.docs.List(ctx, nil, []filter.OrderBy{{Path: CreatedAtFieldPath, Direction: firestore.Desc}})
}

func (r ProductRepository) GetById(ctx context.Context, id string) (*model.Product, error) {
	return r.docs.Get(ctx, id)
}

func (r ProductRepository) Create(ctx context.Context, data model.Product) (string, error) {
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt
	if data.Specs == nil {
		data.Specs = []string{}
	}
	if data.Images == nil {
		data.Images = []string{}
	}

	return r.docs.Create(ctx, data)
}

func (r ProductRepository) Update(ctx context.Context, id string, patch model.ProductPatch) error {
	updates := PatchUpdates(patch)
	updates = append(updates, firestore.Update{
		Path:  UpdatedAtFieldPath,
		Value: time.Now().UTC(),
	})

	return r.docs.Update(ctx, id, updates)
}

func (r ProductRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, id)
}

// PatchUpdates translates the non-nil fields of the patch into firestore updates.
func PatchUpdates(patch model.ProductPatch) []firestore.Update {
	updates := []firestore.Update{}

	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: NameFieldPath, Value: *patch.Name})
	}
	if patch.Category != nil {
		updates = append(updates, firestore.Update{Path: CategoryFieldPath, Value: *patch.Category})
	}
	if patch.Description != nil {
		updates = append(updates, firestore.Update{Path: DescriptionFieldPath, Value: *patch.Description})
	}
	if patch.FullDescription != nil {
		updates = append(updates, firestore.Update{Path: FullDescriptionFieldPath, Value: *patch.FullDescription})
	}
	if patch.Specs != nil {
		updates = append(updates, firestore.Update{Path: SpecsFieldPath, Value: patch.Specs})
	}
	if patch.Image != nil {
		updates = append(updates, firestore.Update{Path: ImageFieldPath, Value: *patch.Image})
	}
	if patch.Images != nil {
		updates = append(updates, firestore.Update{Path: ImagesFieldPath, Value: patch.Images})
	}
	if patch.Rating != nil {
		updates = append(updates, firestore.Update{Path: RatingFieldPath, Value: *patch.Rating})
	}
	if patch.Reviews != nil {
		updates = append(updates, firestore.Update{Path: ReviewsFieldPath, Value: *patch.Reviews})
	}
	if patch.Featured != nil {
		updates = append(updates, firestore.Update{Path: FeaturedFieldPath, Value: *patch.Featured})
	}

	return updates
}

// NotifyOnChanges streams every add, modify and remove on the products collection.
func (r ProductRepository) NotifyOnChanges(ctx context.Context) <-chan ProductEvent {

	ch := make(chan ProductEvent)
	var writeFailureCount, writeFailureThreshold int32 = 0, 3

	go func() {
		defer close(ch)

		query := r.db.Collection(productNode).Query
		helper.NotifyOnChanges(ctx, r.db, query, nil, nil, func(dc firestore.DocumentChange, err error) error {

			if atomic.LoadInt32(&writeFailureCount) > writeFailureThreshold {
				return fmt.Errorf("write failure threshould reached")
			}

			product := model.Product{}

			if err != nil {
				if !(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
					log.Error().Err(err).Msg("product repo: failed to read product events")
					helper.NonblockingWrite[ProductEvent](ctx, channelWriteTimeout, ch, ProductEvent{Product: product, Err: err})
				}
				return err
			}

			if err := dc.Doc.DataTo(&product); err != nil {
				log.Error().Err(err).Str("productId", dc.Doc.Ref.ID).Msg("product repo: failed to convert doc to product")
				return nil
			}
			product.Id = dc.Doc.Ref.ID

			e := ProductEvent{Product: product, Type: changeType(dc.Kind)}
			if err := helper.NonblockingWrite[ProductEvent](ctx, channelWriteTimeout, ch, e); err != nil {
				atomic.AddInt32(&writeFailureCount, 1)
			}

			return nil
		})
	}()

	return ch
}

func changeType(kind firestore.DocumentChangeKind) event.EventType {
	switch kind {
	case firestore.DocumentAdded:
		return event.DbDocAdded
	case firestore.DocumentRemoved:
		return event.DbDocDeleted
	default:
		return event.DbDocChanged
	}
}
