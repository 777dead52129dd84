package testimonial

const (
	// collection name
	testimonialNode string = "testimonials"

	// Fields' name and path
	QuoteFieldPath     string = "quote"
	AuthorFieldPath    string = "author"
	CompanyFieldPath   string = "company"
	LogoFieldPath      string = "logo"
	RatingFieldPath    string = "rating"
	FeaturedFieldPath  string = "featured"
	CreatedAtFieldPath string = "createdAt"
)
