package contactemail

import (
	"context"

	"go-firestore-catalog/internal/model"
)

type IRepository interface {
	List(ctx context.Context) ([]model.ContactEmail, error)
	Create(ctx context.Context, data model.ContactEmail) (string, error)
	SetRead(ctx context.Context, id string, read bool) error
	// MarkAllRead flags every unread message as read and returns how many were changed.
	MarkAllRead(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
