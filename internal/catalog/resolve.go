package catalog

import (
	"fmt"

	"go-firestore-catalog/internal/model"
)

const placeholderDescription = "This product is no longer available."

// Resolution is either Found or Missing.
type Resolution interface {
	resolution()
}

type Found struct {
	Product model.Product
}

type Missing struct {
	Id string
}

func (Found) resolution()   {}
func (Missing) resolution() {}

// Placeholder is the record shown in place of a deleted product.
func (m Missing) Placeholder() model.Product {
	return model.Product{
		Id:          m.Id,
		Name:        fmt.Sprintf("Product %s (Not Found)", m.Id),
		Description: placeholderDescription,
		Specs:       []string{},
		Images:      []string{},
	}
}

type Resolver struct {
	byId map[string]model.Product
}

func NewResolver(products []model.Product) Resolver {
	byId := make(map[string]model.Product, len(products))
	for _, p := range products {
		byId[p.Id] = p
	}
	return Resolver{byId: byId}
}

func (r Resolver) Resolve(id string) Resolution {
	if p, ok := r.byId[id]; ok {
		return Found{Product: p}
	}
	return Missing{Id: id}
}

// Product returns the resolved product or the placeholder.
func Product(r Resolution) model.Product {
	switch v := r.(type) {
	case Found:
		return v.Product
	case Missing:
		return v.Placeholder()
	default:
		panic(fmt.Sprintf("catalog: unknown resolution %T", r))
	}
}

// IsMissing reports whether the resolution is a dangling reference.
func IsMissing(r Resolution) bool {
	_, ok := r.(Missing)
	return ok
}
