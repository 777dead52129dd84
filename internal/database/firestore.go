package database

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
)

const (
	// a single batch accepts at most 500 writes
	maxBatchSize = 500

	errToleranceCap = 20
)

type snapEvent struct {
	snap *firestore.QuerySnapshot
	err  error
}

type snapCh chan snapEvent

type FirestoreClient struct {
	*firestore.Client
	writeTimeout time.Duration
}

var _ Client = FirestoreClient{}

func New(client *firestore.Client, writeTimeout time.Duration) FirestoreClient {
	if writeTimeout <= 0 {
		writeTimeout = time.Second * 120
	}
	return FirestoreClient{
		Client:       client,
		writeTimeout: writeTimeout,
	}
}

// NotifyOnChanges listens to the given SnapshotIterator and puts the changes of the given kinds on the
// ChangeEvent channel. When no kind is given every change is delivered.
// The listener tolerates up to errToleranceCap read errors, then it reports the last one and closes the channel.
func (c FirestoreClient) NotifyOnChanges(ctx context.Context, it *firestore.QuerySnapshotIterator, kinds ...firestore.DocumentChangeKind) <-chan ChangeEvent {

	ch := make(chan ChangeEvent)
	errCnt := 0

	wanted := func(kind firestore.DocumentChangeKind) bool {
		if len(kinds) == 0 {
			return true
		}
		for _, k := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}

	go func() {
		defer close(ch)

		eventCh := registerEventListener(ctx, it)
		for event := range eventCh {
			if event.err != nil {
				// The error is not wrapped properly, so errors.Is() does not work
				if isContextErr(event.err) {
					return
				}

				log.Error().Err(event.err).Msg("error reading events")
				errCnt++
				if errCnt < errToleranceCap {
					continue
				}
				ch <- ChangeEvent{Err: event.err}
				return
			}

			for _, change := range event.snap.Changes {
				if !wanted(change.Kind) || change.Doc == nil {
					continue
				}

				select {
				case ch <- ChangeEvent{Change: change}:
					continue
				case <-ctx.Done():
					return
				case <-time.After(time.Minute):
					log.Error().Str("doc", change.Doc.Ref.ID).Msg("timedout to deliver a change to the client")
				}
			}
		}
	}()

	return ch
}

// registerEventListener keeps the listener open until context is cancelled
func registerEventListener(ctx context.Context, it *firestore.QuerySnapshotIterator) <-chan snapEvent {

	threshold := 5
	retry := 0
	c := make(snapCh)
	go func() {
		defer close(c)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err == iterator.Done {
				return
			}

			select {
			case <-ctx.Done():
				return
			case c <- snapEvent{snap, err}:
				continue
			case <-time.After(time.Second * 10):
				log.Error().Msg("timedout to deliver a snapshot to the client")
				retry++
				if retry > threshold {
					return
				}
			}
		}
	}()

	return c
}

// IterDocs calls fn for every document of the query and stops at the first error.
func (c FirestoreClient) IterDocs(ctx context.Context, query firestore.Query, fn func(*firestore.DocumentSnapshot) error) error {
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}

		if err := fn(doc); err != nil {
			return err
		}
	}
}

func (c FirestoreClient) GetDoc(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	// a missing doc comes back as a codes.NotFound error
	return docRef.Get(ctx)
}

func (c FirestoreClient) UpdateDoc(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update, preconds ...firestore.Precondition) (_ *firestore.WriteResult, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	return docRef.Update(ctx, updates, preconds...)
}

// UpdateDocs commits the updates in batches of maxBatchSize. Batches committed before a failure stay committed.
func (c FirestoreClient) UpdateDocs(ctx context.Context, data []UpdateBatch) (_ []*firestore.WriteResult, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	results := make([]*firestore.WriteResult, 0, len(data))
	for start := 0; start < len(data); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(data) {
			end = len(data)
		}

		batch := c.Client.Batch()
		for _, item := range data[start:end] {
			batch.Update(item.DocRef, item.Updates)
		}

		res, err := batch.Commit(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, res...)
	}

	return results, nil
}

func (c FirestoreClient) SetDoc(ctx context.Context, docRef *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (_ *firestore.WriteResult, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	return docRef.Set(ctx, data, opts...)
}

func (c FirestoreClient) DeleteDoc(ctx context.Context, docRef *firestore.DocumentRef) (_ *firestore.WriteResult, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()
	colls, err := docRef.Collections(ctx).GetAll()
	if err != nil {
		log.Error().Err(err).Msgf("failed to get all collections of the doc %s", docRef.Path)
		return nil, err
	}

	for _, collRef := range colls {
		// must not be concurrent otherwise subcolls will not be cleaned up due to context cancellation
		if err := c.DeleteColl(ctx, collRef); err != nil {
			return nil, err
		}
	}

	return docRef.Delete(ctx)
}

func (c FirestoreClient) DeleteColl(ctx context.Context, collRef *firestore.CollectionRef) error {
	// Recursively delete all subcollections
	docs := collRef.Documents(ctx)
	defer docs.Stop()
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := c.DeleteDoc(ctx, doc.Ref); err != nil {
			return err
		}
	}
}

func isContextErr(err error) bool {
	return strings.Contains(err.Error(), "context canceled") || strings.Contains(err.Error(), "context deadline exceeded")
}
