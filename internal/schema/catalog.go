// Package schema maps logical column names onto the column family that physically owns them.
//
// A Catalog is built once at startup and never changes. Every column belongs to exactly one
// family; families are listed in the order their first column was declared.
package schema

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-analytics/internal/litetable"
)

const (
	FamilyUser    = "user_data"
	FamilyGeo     = "geo_data"
	FamilyMetrics = "metrics_data"

	ColumnName        = "name"
	ColumnEmail       = "email"
	ColumnCity        = "city"
	ColumnCountry     = "country"
	ColumnVisits      = "visits"
	ColumnAdSpend     = "ad_spend"
	ColumnLastSession = "last_session"
)

// ErrUnknownColumn is returned for any column name the catalog does not declare.
var ErrUnknownColumn = errors.New("unknown column")

// Column declares a single logical column.
type Column struct {
	Name   string
	Family string
	Kind   litetable.Kind
	// AutoTimestamp columns are stamped with the write time by the router.
	AutoTimestamp bool
}

// Entry is one line of DescribeSchema output.
type Entry struct {
	Column string `json:"column"`
	Family string `json:"family"`
	Type   string `json:"type"`
}

// Catalog is the fixed mapping of column names to their owning family and kind.
// It is built once and never mutated, so it is safe for concurrent reads.
type Catalog struct {
	columns  []Column
	index    map[string]int
	families []string
}

// NewCatalog validates the column declarations and builds an immutable catalog.
func NewCatalog(columns ...Column) (*Catalog, error) {
	if len(columns) == 0 {
		return nil, errors.New("catalog requires at least one column")
	}

	c := &Catalog{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	seenFamily := make(map[string]struct{})

	var errGrp []error
	for _, col := range columns {
		if col.Name == "" {
			errGrp = append(errGrp, errors.New("column name cannot be empty"))
			continue
		}
		if col.Family == "" {
			errGrp = append(errGrp, fmt.Errorf("column %s has no family", col.Name))
			continue
		}
		if _, dup := c.index[col.Name]; dup {
			errGrp = append(errGrp, fmt.Errorf("column %s declared twice", col.Name))
			continue
		}
		if col.AutoTimestamp && col.Kind != litetable.KindTimestamp {
			errGrp = append(errGrp, fmt.Errorf("auto timestamp column %s must be a timestamp",
				col.Name))
			continue
		}

		c.index[col.Name] = len(c.columns)
		c.columns = append(c.columns, col)
		if _, ok := seenFamily[col.Family]; !ok {
			seenFamily[col.Family] = struct{}{}
			c.families = append(c.families, col.Family)
		}
	}

	if err := errors.Join(errGrp...); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCatalog is the three-family layout the simulator ships with.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Column{Name: ColumnName, Family: FamilyUser, Kind: litetable.KindString},
		Column{Name: ColumnEmail, Family: FamilyUser, Kind: litetable.KindString},
		Column{Name: ColumnCity, Family: FamilyGeo, Kind: litetable.KindString},
		Column{Name: ColumnCountry, Family: FamilyGeo, Kind: litetable.KindString},
		Column{Name: ColumnVisits, Family: FamilyMetrics, Kind: litetable.KindNumber},
		Column{Name: ColumnAdSpend, Family: FamilyMetrics, Kind: litetable.KindNumber},
		Column{Name: ColumnLastSession, Family: FamilyMetrics, Kind: litetable.KindTimestamp,
			AutoTimestamp: true},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// FamilyOf returns the family owning column.
func (c *Catalog) FamilyOf(column string) (string, error) {
	i, ok := c.index[column]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	return c.columns[i].Family, nil
}

// Column returns the declaration for name.
func (c *Catalog) Column(name string) (Column, bool) {
	i, ok := c.index[name]
	if !ok {
		return Column{}, false
	}
	return c.columns[i], true
}

// AllColumns returns every column name in declaration order.
func (c *Catalog) AllColumns() []string {
	names := make([]string, len(c.columns))
	for i, col := range c.columns {
		names[i] = col.Name
	}
	return names
}

// Families returns every family name in declaration order.
func (c *Catalog) Families() []string {
	out := make([]string, len(c.families))
	copy(out, c.families)
	return out
}

func (c *Catalog) FamilyCount() int {
	return len(c.families)
}

func (c *Catalog) ColumnCount() int {
	return len(c.columns)
}

// ColumnsOf returns the columns owned by family, in declaration order.
func (c *Catalog) ColumnsOf(family string) []Column {
	var out []Column
	for _, col := range c.columns {
		if col.Family == family {
			out = append(out, col)
		}
	}
	return out
}

// Describe lists (column, family) pairs in declaration order.
func (c *Catalog) Describe() []Entry {
	out := make([]Entry, len(c.columns))
	for i, col := range c.columns {
		out[i] = Entry{Column: col.Name, Family: col.Family, Type: col.Kind.String()}
	}
	return out
}
