package contactemail

import (
	"context"
	"time"

	"go-firestore-catalog/internal/database"
	"go-firestore-catalog/internal/model"
	"go-firestore-catalog/internal/repository/document"
	"go-firestore-catalog/internal/repository/filter"
	"go-firestore-catalog/internal/repository/ops"

	"cloud.google.com/go/firestore"
)

type ContactEmailRepository struct {
	docs document.Collection[model.ContactEmail]
}

var _ IRepository = ContactEmailRepository{}

func New(db database.Client) ContactEmailRepository {
	return ContactEmailRepository{
		docs: document.New(db, contactEmailNode, "contact email", func(c *model.ContactEmail, id string) {
			c.Id = id
		}),
	}
}

func (r ContactEmailRepository) List(ctx context.Context) ([]model.ContactEmail, error) {
	return r.docs.List(ctx, nil, []filter.OrderBy{{Path: CreatedAtFieldPath, Direction: firestore.Desc}})
}

func (r ContactEmailRepository) Create(ctx context.Context, data model.ContactEmail) (string, error) {
	data.CreatedAt = time.Now().UTC()
	data.Read = false
	return r.docs.Create(ctx, data)
}

func (r ContactEmailRepository) SetRead(ctx context.Context, id string, read bool) error {
	return r.docs.Update(ctx, id, []firestore.Update{{Path: ReadFieldPath, Value: read}})
}

func (r ContactEmailRepository) MarkAllRead(ctx context.Context) (int, error) {
	unread, err := r.docs.List(ctx, []filter.Where{{Path: ReadFieldPath, Op: ops.Equal, Value: false}}, nil)
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(unread))
	for _, m := range unread {
		ids = append(ids, m.Id)
	}

	if err := r.docs.UpdateMany(ctx, ids, []firestore.Update{{Path: ReadFieldPath, Value: true}}); err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (r ContactEmailRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, id)
}
