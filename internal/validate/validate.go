package validate

import (
	"fmt"
	"strings"
)

// FieldError names one rejected input field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Reason
}

// FieldErrors accumulates rejections across a request body so a client
// sees every problem at once instead of one per round trip.
type FieldErrors []FieldError

func (errs FieldErrors) Error() string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Ok reports whether no field was rejected.
func (errs FieldErrors) Ok() bool { return len(errs) == 0 }

// Required rejects empty string values.
func (errs *FieldErrors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		*errs = append(*errs, FieldError{Field: field, Reason: "is required"})
	}
}

// Enum rejects non-empty values outside the allowed set. Empty values are
// left alone so defaults can fill them; pair with Required when a field
// is both mandatory and enumerated.
func (errs *FieldErrors) Enum(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	*errs = append(*errs, FieldError{
		Field:  field,
		Reason: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
	})
}

// EnumFold matches value against allowed case-insensitively and returns
// the canonical (declared) spelling. Geofile file types are the one enum
// in the system that accepts any casing on input.
func EnumFold(value string, allowed []string) (string, bool) {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return a, true
		}
	}
	return "", false
}

// Default returns value, or fallback when value is empty.
func Default(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
