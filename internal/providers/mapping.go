package providers

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/techlens/provider-lab/pkg/query"
	"github.com/techlens/provider-lab/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "providers", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("category", "Category").
	Project("kind", "Kind").
	Project("config", "Config").
	Project("is_enabled", "IsEnabled").
	Project("is_default", "IsDefault").
	Project("validation_status", "ValidationStatus").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanProvider(s repository.Scanner) (Provider, error) {
	var p Provider
	var config []byte
	err := s.Scan(
		&p.ID, &p.Name, &p.Category, &p.Kind, &config,
		&p.IsEnabled, &p.IsDefault, &p.ValidationStatus,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}
	if len(config) > 0 {
		if err := json.Unmarshal(config, &p.Config); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Filters narrows provider listings.
type Filters struct {
	Category *string
	Kind     *string
	Enabled  *bool
}

// FiltersFromQuery parses listing filters from URL query values.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if c := values.Get("category"); c != "" {
		f.Category = &c
	}
	if k := values.Get("kind"); k != "" {
		f.Kind = &k
	}
	if e := values.Get("enabled"); e != "" {
		if enabled, err := strconv.ParseBool(e); err == nil {
			f.Enabled = &enabled
		}
	}
	return f
}

// Apply adds the filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Category != nil {
		b.WhereEquals("Category", *f.Category)
	}
	if f.Kind != nil {
		b.WhereEquals("Kind", *f.Kind)
	}
	if f.Enabled != nil {
		b.WhereEquals("IsEnabled", *f.Enabled)
	}
	return b
}
