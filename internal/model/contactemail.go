package model

import "time"

type ContactEmail struct {
	Id        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Phone     string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `firestore:"subject" json:"subject"`
	Message   string    `firestore:"message" json:"message"`
	Read      bool      `firestore:"read" json:"read"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
