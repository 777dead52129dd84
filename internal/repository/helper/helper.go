package helper

import (
	"context"
	"time"

	"go-firestore-catalog/internal/database"
	"go-firestore-catalog/internal/repository/filter"

	"cloud.google.com/go/firestore"
)

// NotifyOnChanges runs the query listener and calls fn for every change of the given kinds.
// It returns when the listener closes, fn returns an error or a listener error was reported to fn.
func NotifyOnChanges(ctx context.Context, db database.Client, query firestore.Query,
	where []filter.Where, kinds []firestore.DocumentChangeKind, fn func(firestore.DocumentChange, error) error) {

	query = filter.Apply(query, where, nil)

	events := db.NotifyOnChanges(ctx, query.Snapshots(ctx), kinds...)

	for e := range events {
		if e.Err != nil {
			fn(e.Change, e.Err)
			return
		}

		if err := fn(e.Change, nil); err != nil {
			return
		}
	}
}

// NonblockingWrite is a generic function that can write any type of event to any channel type.
// T is the type parameter for the event.
func NonblockingWrite[T any](ctx context.Context, timeout time.Duration, ch chan<- T, event T) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
