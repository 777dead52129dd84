package newarrival

const (
	// collection name
	newArrivalNode string = "newArrivals"

	// Fields' name and path
	ProductIdFieldPath string = "productId"
	DateAddedFieldPath string = "dateAdded"
	FeaturedFieldPath  string = "featured"
	CreatedAtFieldPath string = "createdAt"
	UpdatedAtFieldPath string = "updatedAt"
)
