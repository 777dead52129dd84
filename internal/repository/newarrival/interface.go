package newarrival

import (
	"context"

	"go-firestore-catalog/internal/model"
)

type IRepository interface {
	List(ctx context.Context) ([]model.NewArrival, error)
	GetById(ctx context.Context, id string) (*model.NewArrival, error)
	Create(ctx context.Context, data model.NewArrival) (string, error)
	Update(ctx context.Context, id string, patch model.NewArrivalPatch) error
	Delete(ctx context.Context, id string) error
}
