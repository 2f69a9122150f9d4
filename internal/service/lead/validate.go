package lead

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/badoux/checkmail"
)

// Validation rule identifiers surfaced in ValidationError.Rule.
const (
	RuleRequired    = "required"
	RuleNonEmpty    = "non-empty"
	RuleType        = "type"
	RuleFormat      = "format"
	RuleInteger     = "integer"
	RuleNonNegative = "non-negative"
)

// Validate builds a Lead from an untyped request payload. It is a pure
// function: it either returns a fully populated Lead or a *ValidationError
// for the first violated constraint, checked in field order. JSON null is
// treated the same as an absent field. Unknown keys are ignored.
func Validate(payload map[string]any) (*Lead, error) {
	name, err := requiredString(payload, "name")
	if err != nil {
		return nil, err
	}

	email, err := requiredString(payload, "email")
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, &ValidationError{Field: "email", Rule: RuleFormat, Message: "must be a valid email address"}
	}

	l := &Lead{Name: name, Email: email}

	if l.Phone, err = optionalString(payload, "phone"); err != nil {
		return nil, err
	}
	if l.Company, err = optionalString(payload, "company"); err != nil {
		return nil, err
	}
	if l.Location, err = optionalString(payload, "location"); err != nil {
		return nil, err
	}
	if l.UnitTypes, err = optionalStringSlice(payload, "unit_types"); err != nil {
		return nil, err
	}
	if l.UnitsCount, err = optionalCount(payload, "units_count"); err != nil {
		return nil, err
	}
	if l.CapacityTonnage, err = optionalString(payload, "capacity_tonnage"); err != nil {
		return nil, err
	}
	if l.PreferredInterval, err = optionalString(payload, "preferred_interval"); err != nil {
		return nil, err
	}
	if l.PainPoints, err = optionalStringSlice(payload, "pain_points"); err != nil {
		return nil, err
	}
	if l.Message, err = optionalString(payload, "message"); err != nil {
		return nil, err
	}

	return l, nil
}

func requiredString(payload map[string]any, field string) (string, error) {
	v, ok := payload[field]
	if !ok || v == nil {
		return "", &ValidationError{Field: field, Rule: RuleRequired, Message: "field is required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: field, Rule: RuleType, Message: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: field, Rule: RuleNonEmpty, Message: "must not be empty"}
	}
	return s, nil
}

func optionalString(payload map[string]any, field string) (*string, error) {
	v, ok := payload[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, &ValidationError{Field: field, Rule: RuleType, Message: "must be a string"}
	}
	return &s, nil
}

func optionalStringSlice(payload map[string]any, field string) ([]string, error) {
	v, ok := payload[field]
	if !ok || v == nil {
		return nil, nil
	}
	switch vv := v.(type) {
	case []string:
		out := make([]string, len(vv))
		copy(out, vv)
		return out, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, elem := range vv {
			s, ok := elem.(string)
			if !ok {
				return nil, &ValidationError{Field: field, Rule: RuleType, Message: "must be an array of strings"}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &ValidationError{Field: field, Rule: RuleType, Message: "must be an array of strings"}
	}
}

// optionalCount parses units_count. JSON numbers decode as float64, so
// integral floats are accepted while fractional values are rejected; CBOR
// and programmatic callers may supply native integer types.
func optionalCount(payload map[string]any, field string) (*int, error) {
	v, ok := payload[field]
	if !ok || v == nil {
		return nil, nil
	}

	var n int
	switch vv := v.(type) {
	case float64:
		if math.Trunc(vv) != vv || math.IsInf(vv, 0) || math.IsNaN(vv) {
			return nil, &ValidationError{Field: field, Rule: RuleInteger, Message: "must be an integer"}
		}
		n = int(vv)
	case int:
		n = vv
	case int64:
		n = int(vv)
	case uint64:
		if vv > math.MaxInt {
			return nil, &ValidationError{Field: field, Rule: RuleInteger, Message: "out of range"}
		}
		n = int(vv)
	case json.Number:
		i, err := vv.Int64()
		if err != nil {
			return nil, &ValidationError{Field: field, Rule: RuleInteger, Message: "must be an integer"}
		}
		n = int(i)
	default:
		return nil, &ValidationError{Field: field, Rule: RuleType, Message: fmt.Sprintf("must be an integer, got %T", v)}
	}

	if n < 0 {
		return nil, &ValidationError{Field: field, Rule: RuleNonNegative, Message: "must be zero or greater"}
	}
	return &n, nil
}
