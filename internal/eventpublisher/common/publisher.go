package common

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-firestore-catalog/internal/eventpublisher/event"
)

var ErrWriteFailure = errors.New("write failure threshold exceeded")

// PublisherWithFailureThreshold delivers events with a per-write timeout and reports
// ErrWriteFailure once a subscriber missed writeFailureThreshold deliveries in a row.
type PublisherWithFailureThreshold struct {
	writeTimeout          time.Duration
	writeFailureThreshold int
	misses                map[event.EventWChannel]int
	missesMu              sync.Mutex
}

func NewPublisherWithFailureThreshold(writeTimeout time.Duration, writeFailureThreshold int) *PublisherWithFailureThreshold {
	return &PublisherWithFailureThreshold{
		writeTimeout:          writeTimeout,
		writeFailureThreshold: writeFailureThreshold,
		misses:                make(map[event.EventWChannel]int),
	}
}

func (p *PublisherWithFailureThreshold) Publish(ctx context.Context, subscriber event.EventWChannel, e event.Event) (err error) {

	defer func() {
		// a subscriber dropped by a concurrent delivery is already closed
		if r := recover(); r != nil {
			err = ErrWriteFailure
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	select {
	case subscriber <- e:
		p.Forget(subscriber)
		return nil
	case <-ctx.Done():
		if p.miss(subscriber) >= p.writeFailureThreshold {
			return ErrWriteFailure
		}
		return nil
	}
}

// Forget clears the missed deliveries recorded for subscriber.
func (p *PublisherWithFailureThreshold) Forget(subscriber event.EventWChannel) {
	p.missesMu.Lock()
	defer p.missesMu.Unlock()
	delete(p.misses, subscriber)
}

// Misses returns the consecutive missed deliveries of subscriber.
func (p *PublisherWithFailureThreshold) Misses(subscriber event.EventWChannel) int {
	p.missesMu.Lock()
	defer p.missesMu.Unlock()
	return p.misses[subscriber]
}

func (p *PublisherWithFailureThreshold) miss(subscriber event.EventWChannel) int {
	p.missesMu.Lock()
	defer p.missesMu.Unlock()
	p.misses[subscriber]++
	return p.misses[subscriber]
}
