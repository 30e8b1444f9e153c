// Package query provides a projection-mapped SQL builder for PostgreSQL.
// Field names used by callers are logical identifiers that the projection
// translates into qualified column references.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap translates logical field names into qualified column
// references for a single table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a ProjectionMap for schema.table with the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column under a logical field name. Registration order
// determines column order in generated SELECT statements.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.columns = append(p.columns, column)
	p.fields[field] = column
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the aliased column list for SELECT clauses.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns the aliased columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	qualified := make([]string, len(p.columns))
	for i, c := range p.columns {
		qualified[i] = p.alias + "." + c
	}
	return qualified
}

// Column returns the qualified column reference for a logical field name.
// Unknown fields are returned unqualified.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.fields[field]
	if !ok {
		return field
	}
	return p.alias + "." + col
}
