package model

import "time"

type NewArrival struct {
	Id        string    `firestore:"-" json:"id"`
	ProductId string    `firestore:"productId" json:"productId"`
	DateAdded time.Time `firestore:"dateAdded" json:"dateAdded"`
	Featured  bool      `firestore:"featured" json:"featured"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type NewArrivalPatch struct {
	ProductId *string    `json:"productId,omitempty"`
	DateAdded *time.Time `json:"dateAdded,omitempty"`
	Featured  *bool      `json:"featured,omitempty"`
}

type BestSelling struct {
	Id        string    `firestore:"-" json:"id"`
	ProductId string    `firestore:"productId" json:"productId"`
	Sales     int       `firestore:"sales" json:"sales"`
	Revenue   float64   `firestore:"revenue" json:"revenue"`
	Period    string    `firestore:"period" json:"period"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type BestSellingPatch struct {
	ProductId *string  `json:"productId,omitempty"`
	Sales     *int     `json:"sales,omitempty"`
	Revenue   *float64 `json:"revenue,omitempty"`
	Period    *string  `json:"period,omitempty"`
}

// Testimonial doubles as a landing-page review: Featured ones are shown on the clients page.
type Testimonial struct {
	Id        string    `firestore:"-" json:"id"`
	Quote     string    `firestore:"quote" json:"quote"`
	Author    string    `firestore:"author" json:"author"`
	Company   string    `firestore:"company" json:"company"`
	Logo      string    `firestore:"logo" json:"logo"`
	Rating    int       `firestore:"rating" json:"rating"`
	Featured  bool      `firestore:"featured" json:"featured"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type TestimonialPatch struct {
	Quote    *string `json:"quote,omitempty"`
	Author   *string `json:"author,omitempty"`
	Company  *string `json:"company,omitempty"`
	Logo     *string `json:"logo,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}
