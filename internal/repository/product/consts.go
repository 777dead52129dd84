package product

import "time"

const (
	// collection name
	productNode string = "products"

	// Fields' name and path
	NameFieldPath            string = "name"
	CategoryFieldPath        string = "category"
	DescriptionFieldPath     string = "description"
	FullDescriptionFieldPath string = "fullDescription"
	SpecsFieldPath           string = "specs"
	ImageFieldPath           string = "image"
	ImagesFieldPath          string = "images"
	RatingFieldPath          string = "rating"
	ReviewsFieldPath         string = "reviews"
	FeaturedFieldPath        string = "featured"
	CreatedAtFieldPath       string = "createdAt"
	UpdatedAtFieldPath       string = "updatedAt"

	// It must not exceed the write timeout of the database.firestore.notifyOnChanges
	channelWriteTimeout time.Duration = time.Second * 3
)
