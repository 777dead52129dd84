package bestselling

const (
	// collection name
	bestSellingNode string = "bestSelling"

	// Fields' name and path
	ProductIdFieldPath string = "productId"
	SalesFieldPath     string = "sales"
	RevenueFieldPath   string = "revenue"
	PeriodFieldPath    string = "period"
	UpdatedAtFieldPath string = "updatedAt"
)
