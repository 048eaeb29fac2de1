// Package rental parses, validates and reports car rental entries.
package rental

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rotisserie/eris"
)

// RentalEntry is a car rental record. It only lives for one menu interaction.
type RentalEntry struct {
	ID         int     `json:"id"`
	Model      string  `json:"model" validate:"notblank"`
	DailyPrice float64 `json:"price" validate:"gt=0"`
}

// reasons maps validator tags to ValidationFailure reasons
var reasons = map[string]string{
	"notblank": ReasonEmpty,
	"gt":       ReasonNonPositive,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// Report fields by their json name so failures read "model" and "price"
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewRentalEntry builds an entry and checks its invariants
func NewRentalEntry(id int, model string, dailyPrice float64) (*RentalEntry, error) {
	entry := &RentalEntry{
		ID:         id,
		Model:      model,
		DailyPrice: dailyPrice,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Validate returns a *ValidationFailure for the first violated rule
func (e *RentalEntry) Validate() error {
	return classify("", validate.Struct(e))
}

// validateField checks a single value against a validator tag
func validateField(field string, value any, tag string) error {
	return classify(field, validate.Var(value, tag))
}

func classify(field string, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return eris.Wrap(err, "validation failed")
	}

	first := fieldErrs[0]
	if field == "" {
		field = first.Field()
	}
	reason, ok := reasons[first.Tag()]
	if !ok {
		reason = first.Tag()
	}
	return &ValidationFailure{Field: field, Reason: reason}
}
