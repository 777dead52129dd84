package inmemory

import (
	"context"
	"sort"
	"time"

	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository"
	"go-firestore-catalog/internal/repository/bestselling"
	"go-firestore-catalog/internal/repository/contactemail"
	"go-firestore-catalog/internal/repository/newarrival"
	"go-firestore-catalog/internal/repository/product"
	"go-firestore-catalog/internal/repository/review"
	"go-firestore-catalog/internal/repository/testimonial"
)

var (
	_ product.IRepository      = (*ProductRepository)(nil)
	_ review.IRepository       = (*ReviewRepository)(nil)
	_ newarrival.IRepository   = (*NewArrivalRepository)(nil)
	_ bestselling.IRepository  = (*BestSellingRepository)(nil)
	_ testimonial.IRepository  = (*TestimonialRepository)(nil)
	_ contactemail.IRepository = (*ContactEmailRepository)(nil)
)

var now = func() time.Time { return time.Now().UTC() }

type ProductRepository struct{ s *store[model.Product] }

func NewProductRepository(seed []model.Product) *ProductRepository {
	s := newStore("product",
		func(p model.Product) string { return p.Id },
		func(p *model.Product, id string) { p.Id = id })
	s.seed(seed)
	return &ProductRepository{s: s}
}

// SetFailure makes every following call fail with err; nil restores normal behaviour.
func (r *ProductRepository) SetFailure(err error) { r.s.setFailure(err) }

// List returns the newest products first, like the firestore query.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	products, err := r.s.list()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *ProductRepository) GetById(ctx context.Context, id string) (*model.Product, error) {
	return r.s.get(id)
}

func (r *ProductRepository) Create(ctx context.Context, data model.Product) (string, error) {
	data.CreatedAt = now()
	data.UpdatedAt = data.CreatedAt
	if data.Specs == nil {
		data.Specs = []string{}
	}
	if data.Images == nil {
		data.Images = []string{}
	}
	return r.s.create(data)
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch model.ProductPatch) error {
	return r.s.update(id, func(p *model.Product) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.FullDescription != nil {
			p.FullDescription = *patch.FullDescription
		}
		if patch.Specs != nil {
			p.Specs = patch.Specs
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Images != nil {
			p.Images = patch.Images
		}
		if patch.Rating != nil {
			p.Rating = *patch.Rating
		}
		if patch.Reviews != nil {
			p.Reviews = *patch.Reviews
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		p.UpdatedAt = now()
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(id)
}

type ReviewRepository struct{ s *store[model.Review] }

func NewReviewRepository(seed []model.Review) *ReviewRepository {
	s := newStore("review",
		func(r model.Review) string { return r.Id },
		func(r *model.Review, id string) { r.Id = id })
	s.seed(seed)
	return &ReviewRepository{s: s}
}

func (r *ReviewRepository) SetFailure(err error) { r.s.setFailure(err) }

func (r *ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	reviews, err := r.s.list()
	if err != nil {
		return nil, err
	}
	sortReviews(reviews)
	return reviews, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productId string) ([]model.Review, error) {
	all, err := r.s.list()
	if err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0)
	for _, rv := range all {
		if rv.ProductId == productId {
			reviews = append(reviews, rv)
		}
	}
	sortReviews(reviews)
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, data model.Review) (string, error) {
	data.CreatedAt = now()
	return r.s.create(data)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(id)
}

func sortReviews(reviews []model.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

type NewArrivalRepository struct{ s *store[model.NewArrival] }

func NewNewArrivalRepository(seed []model.NewArrival) *NewArrivalRepository {
	s := newStore("newarrival",
		func(n model.NewArrival) string { return n.Id },
		func(n *model.NewArrival, id string) { n.Id = id })
	s.seed(seed)
	return &NewArrivalRepository{s: s}
}

func (r *NewArrivalRepository) List(ctx context.Context) ([]model.NewArrival, error) {
	items, err := r.s.list()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateAdded.After(items[j].DateAdded)
	})
	return items, nil
}

func (r *NewArrivalRepository) GetById(ctx context.Context, id string) (*model.NewArrival, error) {
	return r.s.get(id)
}

func (r *NewArrivalRepository) Create(ctx context.Context, data model.NewArrival) (string, error) {
	data.CreatedAt = now()
	data.UpdatedAt = data.CreatedAt
	if data.DateAdded.IsZero() {
		data.DateAdded = data.CreatedAt
	}
	return r.s.create(data)
}

func (r *NewArrivalRepository) Update(ctx context.Context, id string, patch model.NewArrivalPatch) error {
	return r.s.update(id, func(n *model.NewArrival) {
		if patch.ProductId != nil {
			n.ProductId = *patch.ProductId
		}
		if patch.DateAdded != nil {
			n.DateAdded = *patch.DateAdded
		}
		if patch.Featured != nil {
			n.Featured = *patch.Featured
		}
		n.UpdatedAt = now()
	})
}

func (r *NewArrivalRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(id)
}

type BestSellingRepository struct{ s *store[model.BestSelling] }

func NewBestSellingRepository(seed []model.BestSelling) *BestSellingRepository {
	s := newStore("bestselling",
		func(b model.BestSelling) string { return b.Id },
		func(b *model.BestSelling, id string) { b.Id = id })
	s.seed(seed)
	return &BestSellingRepository{s: s}
}

func (r *BestSellingRepository) List(ctx context.Context) ([]model.BestSelling, error) {
	items, err := r.s.list()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Sales > items[j].Sales
	})
	return items, nil
}

func (r *BestSellingRepository) GetById(ctx context.Context, id string) (*model.BestSelling, error) {
	return r.s.get(id)
}

func (r *BestSellingRepository) Create(ctx context.Context, data model.BestSelling) (string, error) {
	data.CreatedAt = now()
	data.UpdatedAt = data.CreatedAt
	return r.s.create(data)
}

func (r *BestSellingRepository) Update(ctx context.Context, id string, patch model.BestSellingPatch) error {
	return r.s.update(id, func(b *model.BestSelling) {
		if patch.ProductId != nil {
			b.ProductId = *patch.ProductId
		}
		if patch.Sales != nil {
			b.Sales = *patch.Sales
		}
		if patch.Revenue != nil {
			b.Revenue = *patch.Revenue
		}
		if patch.Period != nil {
			b.Period = *patch.Period
		}
		b.UpdatedAt = now()
	})
}

func (r *BestSellingRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(id)
}

type TestimonialRepository struct{ s *store[model.Testimonial] }

func NewTestimonialRepository(seed []model.Testimonial) *TestimonialRepository {
	s := newStore("testimonial",
		func(t model.Testimonial) string { return t.Id },
		func(t *model.Testimonial, id string) { t.Id = id })
	s.seed(seed)
	return &TestimonialRepository{s: s}
}

func (r *TestimonialRepository) List(ctx context.Context, featured *bool) ([]model.Testimonial, error) {
	all, err := r.s.list()
	if err != nil {
		return nil, err
	}

	items := make([]model.Testimonial, 0, len(all))
	for _, t := range all {
		if featured == nil || t.Featured == *featured {
			items = append(items, t)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *TestimonialRepository) GetById(ctx context.Context, id string) (*model.Testimonial, error) {
	return r.s.get(id)
}

func (r *TestimonialRepository) Create(ctx context.Context, data model.Testimonial) (string, error) {
	data.CreatedAt = now()
	return r.s.create(data)
}

func (r *TestimonialRepository) Update(ctx context.Context, id string, patch model.TestimonialPatch) error {
	return r.s.update(id, func(t *model.Testimonial) {
		if patch.Quote != nil {
			t.Quote = *patch.Quote
		}
		if patch.Author != nil {
			t.Author = *patch.Author
		}
		if patch.Company != nil {
			t.Company = *patch.Company
		}
		if patch.Logo != nil {
			t.Logo = *patch.Logo
		}
		if patch.Rating != nil {
			t.Rating = *patch.Rating
		}
		if patch.Featured != nil {
			t.Featured = *patch.Featured
		}
	})
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(id)
}

type ContactEmailRepository struct{ s *store[model.ContactEmail] }

func NewContactEmailRepository(seed []model.ContactEmail) *ContactEmailRepository {
	s := newStore("contactemail",
		func(c model.ContactEmail) string { return c.Id },
		func(c *model.ContactEmail, id string) { c.Id = id })
	s.seed(seed)
	return &ContactEmailRepository{s: s}
}

func (r *ContactEmailRepository) List(ctx context.Context) ([]model.ContactEmail, error) {
	items, err := r.s.list()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *ContactEmailRepository) Create(ctx context.Context, data model.ContactEmail) (string, error) {
	data.CreatedAt = now()
	data.Read = false
	return r.s.create(data)
}

func (r *ContactEmailRepository) SetRead(ctx context.Context, id string, read bool) error {
	return r.s.update(id, func(c *model.ContactEmail) {
		c.Read = read
	})
}

func (r *ContactEmailRepository) MarkAllRead(ctx context.Context) (int, error) {
	items, err := r.s.list()
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, c := range items {
		if c.Read {
			continue
		}
		if err := r.SetRead(ctx, c.Id, true); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func (r *ContactEmailRepository) Delete(ctx context.Context, id string) error {
	return r.s.delete(id)
}

// NewSet returns an empty in-memory repository set.
func NewSet() repository.Set {
	return repository.Set{
		Products:     NewProductRepository(nil),
		Reviews:      NewReviewRepository(nil),
		NewArrivals:  NewNewArrivalRepository(nil),
		BestSelling:  NewBestSellingRepository(nil),
		Testimonials: NewTestimonialRepository(nil),
		Messages:     NewContactEmailRepository(nil),
	}
}
