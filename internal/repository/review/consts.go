package review

const (
	// collection name
	reviewNode string = "reviews"

	// Fields' name and path
	ProductIdFieldPath string = "productId"
	RatingFieldPath    string = "rating"
	CreatedAtFieldPath string = "createdAt"
)
