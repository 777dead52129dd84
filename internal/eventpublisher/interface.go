package eventpublisher

import (
	"context"

	"go-firestore-catalog/internal/eventpublisher/event"
)

// Publisher fans change events out to subscribed channels. Unsubscribing closes the channel.
type Publisher interface {
	Subscribe(event.EventWChannel)
	Unsubscribe(event.EventWChannel)
}

// Feed is a Publisher driven by a change source; Start blocks until the source ends or ctx is done.
type Feed interface {
	Publisher
	Start(ctx context.Context) error
}
