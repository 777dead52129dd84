package product

import (
	"context"
	"time"

	"go-firestore-catalog/internal/eventpublisher"
	"go-firestore-catalog/internal/eventpublisher/common"
	"go-firestore-catalog/internal/eventpublisher/event"
	productRepo "go-firestore-catalog/internal/repository/product"

	"github.com/rs/zerolog/log"
)

const (
	writeTimeout          = time.Second
	writeFailureThreshold = 3
)

type eventFunc func(context.Context) <-chan productRepo.ProductEvent

type ProductPublisher interface {
	eventpublisher.Feed
}

type productPublisher struct {
	eventFn    eventFunc
	submanager *common.SubManager
	publisher  *common.PublisherWithFailureThreshold
}

func new(fn eventFunc) ProductPublisher {
	return &productPublisher{
		eventFn:    fn,
		submanager: common.NewSubManager(),
		publisher:  common.NewPublisherWithFailureThreshold(writeTimeout, writeFailureThreshold),
	}
}

func (p *productPublisher) Subscribe(subscriber event.EventWChannel) {
	p.submanager.Subscribe(subscriber)
}

func (p *productPublisher) Unsubscribe(subscriber event.EventWChannel) {
	p.submanager.Unsubscribe(subscriber)
}

func (p *productPublisher) publish(ctx context.Context, productEvent productRepo.ProductEvent) {
	e := event.Event{
		Message: event.DocChange{Type: productEvent.Type, Id: productEvent.Product.Id},
		Err:     productEvent.Err,
	}

	p.submanager.OnSubscribers(func(subscriber event.EventWChannel) {
		go func() {
			if err := p.publisher.Publish(ctx, subscriber, e); err != nil {
				log.Warn().Err(err).Msg("dropping slow catalog subscriber")
				p.Unsubscribe(subscriber)
				p.publisher.Forget(subscriber)
			}
		}()
	})
}

func (p *productPublisher) Start(ctx context.Context) error {
	defer p.submanager.UnsubscribeAll()

	eventsCh := p.eventFn(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Info().Err(ctx.Err()).Msg("ProductPublisher stopped")
			return ctx.Err()
		case e, ok := <-eventsCh:
			if !ok {
				return nil
			}
			log.Debug().Str("productId", e.Product.Id).Stringer("type", e.Type).Msg("publish catalog change")
			p.publish(ctx, e)
		}
	}
}
