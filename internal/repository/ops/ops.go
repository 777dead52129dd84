package ops

// Firestore query operators
const (
	Equal          string = "=="
	NotEqual       string = "!="
	Greater        string = ">"
	GreaterOrEqual string = ">="
	Less           string = "<"
	LessOrEqual    string = "<="
	In             string = "in"
	ArrayContains  string = "array-contains"
)
