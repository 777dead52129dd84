package contactemail

const (
	// collection name
	contactEmailNode string = "contactEmails"

	// Fields' name and path
	ReadFieldPath      string = "read"
	CreatedAtFieldPath string = "createdAt"
)
