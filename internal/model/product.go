package model

import "time"

const (
	CategoryLaptops        = "Laptops"
	CategoryDesktops       = "Desktops"
	CategoryNetworkDevices = "Network Devices"
	CategoryAudioEquipment = "Audio Equipment"
	CategoryAccessories    = "Accessories"
)

// AllowedCategories is the fixed category set of the catalog.
var AllowedCategories = []string{
	CategoryLaptops,
	CategoryDesktops,
	CategoryNetworkDevices,
	CategoryAudioEquipment,
	CategoryAccessories,
}

func IsAllowedCategory(category string) bool {
	for _, c := range AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	Id              string    `firestore:"-" json:"id"`
	Name            string    `firestore:"name" json:"name"`
	Category        string    `firestore:"category" json:"category"`
	Description     string    `firestore:"description" json:"description"`
	FullDescription string    `firestore:"fullDescription,omitempty" json:"fullDescription,omitempty"`
	Specs           []string  `firestore:"specs" json:"specs"`
	Image           string    `firestore:"image" json:"image"`
	Images          []string  `firestore:"images" json:"images"`
	Rating          float64   `firestore:"rating" json:"rating"`   // denormalized, display fallback only
	Reviews         int       `firestore:"reviews" json:"reviews"` // denormalized, display fallback only
	Featured        bool      `firestore:"featured" json:"featured"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// ProductPatch holds a partial product update; nil fields are left untouched.
type ProductPatch struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Description     *string  `json:"description,omitempty"`
	FullDescription *string  `json:"fullDescription,omitempty"`
	Specs           []string `json:"specs,omitempty"`
	Image           *string  `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	Reviews         *int     `json:"reviews,omitempty"`
	Featured        *bool    `json:"featured,omitempty"`
}
