package model

import "time"

type Review struct {
	Id         string    `firestore:"-" json:"id"`
	ProductId  string    `firestore:"productId" json:"productId"`
	AuthorName string    `firestore:"authorName" json:"authorName"`
	Rating     int       `firestore:"rating" json:"rating"`
	Comment    string    `firestore:"comment" json:"comment"`
	Verified   bool      `firestore:"verified" json:"verified"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}

type ReviewStats struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}
