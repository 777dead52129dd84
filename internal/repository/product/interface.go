package product

import (
	"context"

	"go-firestore-catalog/internal/eventpublisher/event"
	"go-firestore-catalog/internal/model"
)

type IRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetById(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, data model.Product) (string, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

// Notifier streams catalog changes. Only the Firestore repository implements it.
type Notifier interface {
	NotifyOnChanges(ctx context.Context) <-chan ProductEvent
}

type ProductEvent struct {
	Product model.Product
	Type    event.EventType
	Err     error
}
