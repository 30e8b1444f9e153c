package templates

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps field names to validation messages so callers can
// attribute failures to the exact offending input.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for name := range e {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid config fields: %s", strings.Join(fields, ", "))
}

// Validate checks a submitted configuration against the template's declared
// fields and produces a normalized config map.
//
// For each declared field the submitted value is resolved if present and
// non-empty, else the field default applies. A still-absent required field
// yields a field error. Keys not declared by the template are dropped rather
// than rejected. The function is pure: no storage, no network.
func Validate(t *Template, submitted map[string]any) (map[string]any, FieldErrors) {
	normalized := make(map[string]any)
	errs := make(FieldErrors)

	for _, f := range t.ConfigFields {
		spec := f.Spec()

		var resolved any
		if value, ok := submitted[spec.Name]; ok {
			v, err := f.Resolve(value)
			if err != nil {
				errs[spec.Name] = err.Error()
				continue
			}
			resolved = v
		}

		if resolved == nil {
			if d, ok := f.DefaultValue(); ok {
				resolved = d
			}
		}

		if resolved == nil {
			if spec.Required {
				errs[spec.Name] = "required"
			}
			continue
		}

		normalized[spec.Name] = resolved
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return normalized, nil
}
