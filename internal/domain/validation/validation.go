// Package validation checks single form fields against a fixed set of
// declarative constraints.
//
// All bounds are exclusive: MinLength 5 rejects a five-character string and
// Min 1 / Max 5 accept only values strictly between the two. The input form
// depends on exactly this behaviour, so it must not be "corrected" to
// inclusive bounds without changing the form's expectations too.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/ianto3/projectboard/internal/domain"
)

// msgInvalid is the per-field message reported by Check.
const msgInvalid = "is invalid"

// Validatable describes one field value and the constraints it must meet.
// Value holds a string or any Go numeric kind. A nil Value counts as empty.
// Nil constraint
// pointers are skipped. Length constraints apply only to strings and range
// constraints only to numbers.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Validate reports whether v satisfies every constraint it sets.
func Validate(v Validatable) bool {
	valid := true

	if v.Required {
		valid = valid && v.Value != nil && strings.TrimSpace(fmt.Sprint(v.Value)) != ""
	}

	if s, ok := v.Value.(string); ok {
		n := utf8.RuneCountInString(s)
		if v.MinLength != nil {
			valid = valid && n > *v.MinLength
		}
		if v.MaxLength != nil {
			valid = valid && n < *v.MaxLength
		}
	}

	if f, ok := number(v.Value); ok {
		if v.Min != nil {
			valid = valid && f > *v.Min
		}
		if v.Max != nil {
			valid = valid && f < *v.Max
		}
	}

	return valid
}

// Check validates each named field and collects the failures into a
// *domain.ValidationError. It returns nil when every field passes.
func Check(fields map[string]Validatable) error {
	failed := make(map[string]string)
	for name, v := range fields {
		if !Validate(v) {
			failed[name] = msgInvalid
		}
	}
	if len(failed) > 0 {
		return &domain.ValidationError{Fields: failed}
	}
	return nil
}

// Int returns a pointer to n for use as a length constraint.
func Int(n int) *int { return &n }

// Float returns a pointer to f for use as a range constraint.
func Float(f float64) *float64 { return &f }

// number widens any signed, unsigned or floating-point value to float64.
// NaN is reported as a number so that it fails every range comparison.
func number(v any) (float64, bool) {
	if v == nil {
		return math.NaN(), false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	default:
		return math.NaN(), false
	}
}
