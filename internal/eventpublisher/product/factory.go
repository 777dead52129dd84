package product

import (
	"context"

	productRepo "go-firestore-catalog/internal/repository/product"
)

type Factory interface {
	// OnCatalogChange publishes every add, modify and remove on the products collection.
	OnCatalogChange() ProductPublisher
}

type factory struct {
	repo productRepo.Notifier
}

func ProductPublisherFactory(repo productRepo.Notifier) Factory {
	return &factory{
		repo: repo,
	}
}

func (f *factory) OnCatalogChange() ProductPublisher {
	return new(func(ctx context.Context) <-chan productRepo.ProductEvent {
		return f.repo.NotifyOnChanges(ctx)
	})
}
