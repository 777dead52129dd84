package bestselling

import (
	"context"

	"go-firestore-catalog/internal/model"
)

type IRepository interface {
	List(ctx context.Context) ([]model.BestSelling, error)
	GetById(ctx context.Context, id string) (*model.BestSelling, error)
	Create(ctx context.Context, data model.BestSelling) (string, error)
	Update(ctx context.Context, id string, patch model.BestSellingPatch) error
	Delete(ctx context.Context, id string) error
}
