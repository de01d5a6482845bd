package validation

import (
	"fmt"

	"zyn/errors"
)

// Predicate checks one dynamic field value.
type Predicate func(value any) bool

// Str adapts a string predicate for use in a Field. Non-string values fail.
func Str(p func(string) bool) Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && p(s)
	}
}

// Field describes one named value in a Schema. Fields are evaluated in
// declaration order.
type Field struct {
	Name      string
	Required  bool
	Predicate Predicate
}

// ViolationKind distinguishes why a field was rejected.
type ViolationKind string

const (
	// KindMissing: a required field was absent from the input.
	KindMissing ViolationKind = "missing"
	// KindFailed: the field's predicate returned false.
	KindFailed ViolationKind = "failed"
	// KindNoPredicate: the field descriptor carries no usable predicate.
	KindNoPredicate ViolationKind = "no_predicate"
)

// Violation is one structured validation failure.
type Violation struct {
	Field string        `json:"field"`
	Kind  ViolationKind `json:"kind"`
}

// Schema is a fixed, ordered set of field descriptors.
type Schema []Field

// Check evaluates every field and collects all violations, in declaration
// order. A required field that is absent is reported without running its
// predicate; an optional field is checked only when present and non-falsy.
func (sch Schema) Check(values map[string]any) []Violation {
	var out []Violation
	for _, f := range sch {
		v, present := values[f.Name]
		if !present {
			if f.Required {
				out = append(out, Violation{Field: f.Name, Kind: KindMissing})
			}
			continue
		}
		if !f.Required && isFalsy(v) {
			continue
		}
		if f.Predicate == nil {
			out = append(out, Violation{Field: f.Name, Kind: KindNoPredicate})
			continue
		}
		if !f.Predicate(v) {
			out = append(out, Violation{Field: f.Name, Kind: KindFailed})
		}
	}
	return out
}

// Validate is the fail-fast form of Check: it returns an invalid_argument
// error naming the first offending field and the failure kind, or nil.
func (sch Schema) Validate(values map[string]any) error {
	violations := sch.Check(values)
	if len(violations) == 0 {
		return nil
	}
	v := violations[0]
	var detail string
	switch v.Kind {
	case KindMissing:
		detail = "required field is missing"
	case KindNoPredicate:
		detail = "field has no usable validator"
	default:
		detail = "field failed validation"
	}
	return errors.NewError(errors.ErrCodeInvalidArgument,
		fmt.Sprintf("field %q: %s", v.Field, detail))
}

func isFalsy(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == ""
	case bool:
		return !n
	case int:
		return n == 0
	case int64:
		return n == 0
	case uint64:
		return n == 0
	case float64:
		return n == 0
	default:
		return false
	}
}
