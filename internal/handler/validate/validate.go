package validate

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	ierr "go-firestore-catalog/internal/errors"
	"go-firestore-catalog/internal/model"
)

// Fields collects one message per invalid field.
type Fields map[string]string

func New() Fields {
	return Fields{}
}

func (f Fields) Check(ok bool, field, message string) {
	if ok {
		return
	}
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

func (f Fields) Required(field, value string) {
	f.Check(strings.TrimSpace(value) != "", field, "is required")
}

func (f Fields) Between(field string, value, min, max int) {
	f.Check(value >= min && value <= max, field, fmt.Sprintf("must be between %d and %d", min, max))
}

func (f Fields) Category(field, value string) {
	f.Check(model.IsAllowedCategory(value), field, "must be one of "+strings.Join(model.AllowedCategories, ", "))
}

func (f Fields) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.Required(field, value)
		return
	}
	_, err := mail.ParseAddress(value)
	f.Check(err == nil, field, "must be a valid email address")
}

func (f Fields) Err() error {
	return ierr.NewValidationError(f)
}

// Review checks the fields a visitor or an admin must supply for a review.
func Review(authorName string, rating int) Fields {
	f := New()
	f.Required("authorName", authorName)
	f.Between("rating", rating, 1, 5)
	return f
}

// OptionalBool parses a query flag; an empty value is nil.
func OptionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
