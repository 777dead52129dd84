package review

import (
	"context"

	"go-firestore-catalog/internal/model"
)

type IRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	ListByProduct(ctx context.Context, productId string) ([]model.Review, error)
	Create(ctx context.Context, data model.Review) (string, error)
	Delete(ctx context.Context, id string) error
}
