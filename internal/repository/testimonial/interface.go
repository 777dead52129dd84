package testimonial

import (
	"context"

	"go-firestore-catalog/internal/model"
)

type IRepository interface {
	// List returns all testimonials when featured is nil, otherwise only the matching partition.
	List(ctx context.Context, featured *bool) ([]model.Testimonial, error)
	GetById(ctx context.Context, id string) (*model.Testimonial, error)
	Create(ctx context.Context, data model.Testimonial) (string, error)
	Update(ctx context.Context, id string, patch model.TestimonialPatch) error
	Delete(ctx context.Context, id string) error
}
