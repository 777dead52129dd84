package testimonial

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

type TestimonialRepository struct {
	docs document.Collection[model.Testimonial]
}

var _ IRepository = TestimonialRepository{}

func New(db database.Client) TestimonialRepository {
	return TestimonialRepository{
		docs: document.New(db, testimonialNode, "testimonial", func(t *model.Testimonial, id string) {
			t.Id = id
		}),
	}
}

func (r TestimonialRepository) List(ctx context.Context, featured *bool) ([]model.Testimonial, error) {
	where := []filter.Where{}
	if featured != nil {
		where = append(where, filter.Where{Path: FeaturedFieldPath, Op: ops.Equal, Value: *featured})
	}

	testimonials, err := r.docs.List(ctx, where, nil)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(testimonials, func(i, j int) bool {
		return testimonials[i].CreatedAt.After(testimonials[j].CreatedAt)
	})
	return testimonials, nil
}

func (r TestimonialRepository) GetById(ctx context.Context, id string) (*model.Testimonial, error) {
	return r.docs.Get(ctx, id)
}

func (r TestimonialRepository) Create(ctx context.Context, data model.Testimonial) (string, error) {
	data.CreatedAt = time.Now().UTC()
	return r.docs.Create(ctx, data)
}

func (r TestimonialRepository) Update(ctx context.Context, id string, patch model.TestimonialPatch) error {
	return r.docs.Update(ctx, id, PatchUpdates(patch))
}

func (r TestimonialRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, id)
}

// PatchUpdates translates the non-nil fields of the patch into firestore updates.
func PatchUpdates(patch model.TestimonialPatch) []firestore.Update {
	updates := []firestore.Update{}

	if patch.Quote != nil {
		updates = append(updates, firestore.Update{Path: QuoteFieldPath, Value: *patch.Quote})
	}
	if patch.Author != nil {
		updates = append(updates, firestore.Update{Path: AuthorFieldPath, Value: *patch.Author})
	}
	if patch.Company != nil {
		updates = append(updates, firestore.Update{Path: CompanyFieldPath, Value: *patch.Company})
	}
	if patch.Logo != nil {
		updates = append(updates, firestore.Update{Path: LogoFieldPath, Value: *patch.Logo})
	}
	if patch.Rating != nil {
		updates = append(updates, firestore.Update{Path: RatingFieldPath, Value: *patch.Rating})
	}
	if patch.Featured != nil {
		updates = append(updates, firestore.Update{Path: FeaturedFieldPath, Value: *patch.Featured})
	}

	return updates
}
