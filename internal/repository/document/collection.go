package document

import (
	"context"
	"fmt"

	"go-firestore-catalog/internal/database"
	ierr "go-firestore-catalog/internal/errors"
	"go-firestore-catalog/internal/repository/filter"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection is the typed CRUD shared by the entity repositories.
// The document id is not stored in the document; setId copies it into the decoded value.
type Collection[T any] struct {
	db    database.Client
	node  string
	label string
	setId func(*T, string)
}

func New[T any](db database.Client, node, label string, setId func(*T, string)) Collection[T] {
	return Collection[T]{
		db:    db,
		node:  node,
		label: label,
		setId: setId,
	}
}

func (c Collection[T]) Ref(id string) *firestore.DocumentRef {
	return c.db.Collection(c.node).Doc(id)
}

func (c Collection[T]) List(ctx context.Context, where []filter.Where, orderBy []filter.OrderBy) ([]T, error) {

	query := filter.Apply(c.db.Collection(c.node).Query, where, orderBy)

	items := make([]T, 0)
	err := c.db.IterDocs(ctx, query, func(ds *firestore.DocumentSnapshot) error {
		var item T
		if err := ds.DataTo(&item); err != nil {
			return fmt.Errorf("decode %s: %w, id: %s", c.label, err, ds.Ref.ID)
		}
		c.setId(&item, ds.Ref.ID)
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.label, err)
	}

	return items, nil
}

func (c Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("get %s: %w, empty id", c.label, ierr.NotFound)
	}

	docSnap, err := c.db.GetDoc(ctx, c.Ref(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("get %s: %w, id: %s", c.label, ierr.NotFound, id)
		}
		return nil, fmt.Errorf("get %s: %w, id: %s", c.label, err, id)
	}

	if !docSnap.Exists() {
		return nil, fmt.Errorf("get %s: %w, id: %s", c.label, ierr.NotFound, id)
	}

	item := new(T)
	if err := docSnap.DataTo(item); err != nil {
		return nil, fmt.Errorf("get %s: %w, id: %s", c.label, err, id)
	}
	c.setId(item, id)

	return item, nil
}

// Create stores data under a generated id and returns it.
func (c Collection[T]) Create(ctx context.Context, data T) (string, error) {
	docRef := c.db.Collection(c.node).NewDoc()
	if _, err := c.db.SetDoc(ctx, docRef, data); err != nil {
		return "", fmt.Errorf("create %s: %w", c.label, err)
	}
	return docRef.ID, nil
}

// Update applies updates to an existing document. With no updates it only checks that the document exists.
func (c Collection[T]) Update(ctx context.Context, id string, updates []firestore.Update) error {
	if len(updates) == 0 {
		return c.exists(ctx, id)
	}

	if _, err := c.db.UpdateDoc(ctx, c.Ref(id), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("update %s: %w, id: %s", c.label, ierr.NotFound, id)
		}
		return fmt.Errorf("update %s: %w, id: %s", c.label, err, id)
	}
	return nil
}

func (c Collection[T]) exists(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("update %s: %w, empty id", c.label, ierr.NotFound)
	}

	docSnap, err := c.db.GetDoc(ctx, c.Ref(id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("update %s: %w, id: %s", c.label, ierr.NotFound, id)
		}
		return fmt.Errorf("update %s: %w, id: %s", c.label, err, id)
	}
	if !docSnap.Exists() {
		return fmt.Errorf("update %s: %w, id: %s", c.label, ierr.NotFound, id)
	}
	return nil
}

// UpdateMany applies the same updates to every listed id in batched writes.
func (c Collection[T]) UpdateMany(ctx context.Context, ids []string, updates []firestore.Update) error {
	if len(ids) == 0 || len(updates) == 0 {
		return nil
	}

	batch := make([]database.UpdateBatch, 0, len(ids))
	for _, id := range ids {
		batch = append(batch, database.UpdateBatch{DocRef: c.Ref(id), Updates: updates})
	}

	if _, err := c.db.UpdateDocs(ctx, batch); err != nil {
		return fmt.Errorf("update %s: %w, count: %d", c.label, err, len(ids))
	}
	return nil
}

func (c Collection[T]) Delete(ctx context.Context, id string) error {
	if _, err := c.db.DeleteDoc(ctx, c.Ref(id)); err != nil {
		return fmt.Errorf("delete %s: %w, id: %s", c.label, err, id)
	}
	return nil
}
