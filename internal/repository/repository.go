package repository

import (
	"go-firestore-catalog/internal/database"
	"go-firestore-catalog/internal/repository/bestselling"
	"go-firestore-catalog/internal/repository/contactemail"
	"go-firestore-catalog/internal/repository/newarrival"
	"go-firestore-catalog/internal/repository/product"
	"go-firestore-catalog/internal/repository/review"
	"go-firestore-catalog/internal/repository/testimonial"
)

// Set bundles the repositories the HTTP handlers depend on.
type Set struct {
	Products     product.IRepository
	Reviews      review.IRepository
	NewArrivals  newarrival.IRepository
	BestSelling  bestselling.IRepository
	Testimonials testimonial.IRepository
	Messages     contactemail.IRepository
}

// NewFirestoreSet builds every repository on top of the same firestore client.
func NewFirestoreSet(db database.Client) Set {
	return Set{
		Products:     product.New(db),
		Reviews:      review.New(db),
		NewArrivals:  newarrival.New(db),
		BestSelling:  bestselling.New(db),
		Testimonials: testimonial.New(db),
		Messages:     contactemail.New(db),
	}
}
