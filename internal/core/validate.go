// AngelaMos | 2026
// validate.go

package core

import (
	"fmt"
	"strings"
	"time"
)

// DateOrdered enforces start <= end for any pair of optional date fields.
// The same rule recurs on projects, planting events and seasons; field
// names parameterize the error message.
func DateOrdered(start, end *time.Time, startField, endField string) error {
	if start == nil || end == nil {
		return nil
	}
	if start.After(*end) {
		return fmt.Errorf(
			"%s must be <= %s: %w",
			startField,
			endField,
			ErrInvalidInput,
		)
	}
	return nil
}

// NormalizeEmail lower-cases and trims an address so uniqueness checks
// are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeCode trims and upper-cases short reference codes (plot codes,
// SKUs, transaction types).
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// InRange checks an optional numeric field against inclusive bounds.
func InRange(value *float64, min, max float64, field string) error {
	if value == nil {
		return nil
	}
	if *value < min || *value > max {
		return fmt.Errorf(
			"%s must be between %g and %g: %w",
			field,
			min,
			max,
			ErrInvalidInput,
		)
	}
	return nil
}

// NonNegative checks an optional quantity or cost field.
func NonNegative(value *float64, field string) error {
	if value == nil {
		return nil
	}
	if *value < 0 {
		return fmt.Errorf("%s must be >= 0: %w", field, ErrInvalidInput)
	}
	return nil
}

// OneOf checks a string field against an open enumeration.
func OneOf(value, field string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf(
		"%s must be one of %s: %w",
		field,
		strings.Join(allowed, ", "),
		ErrInvalidInput,
	)
}
