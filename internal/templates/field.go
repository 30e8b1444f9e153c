package templates

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldKind identifies a configuration field variant on the wire.
type FieldKind string

// Field kind constants.
const (
	FieldText   FieldKind = "text"
	FieldSecret FieldKind = "secret"
	FieldNumber FieldKind = "number"
	FieldEnum   FieldKind = "enum"
)

// FieldSpec carries the declaration shared by every field variant.
type FieldSpec struct {
	Name     string
	Label    string
	Required bool
}

// Field is one configuration input declared by a template. Each variant
// knows how to coerce a submitted value into its normalized form.
type Field interface {
	// Spec returns the declaration shared by all variants.
	Spec() FieldSpec

	// Kind returns the wire identifier of the variant.
	Kind() FieldKind

	// DefaultValue returns the declared default, if any.
	DefaultValue() (any, bool)

	// Resolve coerces a submitted value into its normalized form.
	// Empty values resolve to nil without error; values that cannot be
	// represented by the variant return a field-attributable error.
	Resolve(value any) (any, error)
}

// TextField holds a free-form string value.
type TextField struct {
	FieldSpec
	Default string
}

func (f TextField) Spec() FieldSpec { return f.FieldSpec }
func (f TextField) Kind() FieldKind { return FieldText }

func (f TextField) DefaultValue() (any, bool) {
	if f.Default == "" {
		return nil, false
	}
	return f.Default, true
}

func (f TextField) Resolve(value any) (any, error) {
	return resolveString(value)
}

// SecretField holds a write-only credential. Stored values are masked on
// every read path and never carry a declared default.
type SecretField struct {
	FieldSpec
}

func (f SecretField) Spec() FieldSpec           { return f.FieldSpec }
func (f SecretField) Kind() FieldKind           { return FieldSecret }
func (f SecretField) DefaultValue() (any, bool) { return nil, false }

func (f SecretField) Resolve(value any) (any, error) {
	return resolveString(value)
}

// NumberField holds a numeric value, normalized to float64.
type NumberField struct {
	FieldSpec
	Default *float64
}

func (f NumberField) Spec() FieldSpec { return f.FieldSpec }
func (f NumberField) Kind() FieldKind { return FieldNumber }

func (f NumberField) DefaultValue() (any, bool) {
	if f.Default == nil {
		return nil, false
	}
	return *f.Default, true
}

func (f NumberField) Resolve(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("must be a number")
		}
		return n, nil
	case string:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("must be a number")
		}
		return n, nil
	default:
		return nil, fmt.Errorf("must be a number")
	}
}

// EnumField holds one value from a closed set of options.
type EnumField struct {
	FieldSpec
	Options []string
	Default string
}

func (f EnumField) Spec() FieldSpec { return f.FieldSpec }
func (f EnumField) Kind() FieldKind { return FieldEnum }

func (f EnumField) DefaultValue() (any, bool) {
	if f.Default == "" {
		return nil, false
	}
	return f.Default, true
}

func (f EnumField) Resolve(value any) (any, error) {
	resolved, err := resolveString(value)
	if err != nil || resolved == nil {
		return resolved, err
	}

	s := resolved.(string)
	for _, option := range f.Options {
		if s == option {
			return s, nil
		}
	}
	return nil, fmt.Errorf("must be one of: %s", strings.Join(f.Options, ", "))
}

func resolveString(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("must be text")
	}
}
