package operations

import (
	"github.com/google/uuid"
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/litetable/litetable-analytics/internal/storage"
	"github.com/rs/zerolog/log"
	"sort"
	"time"
)

// Table is the result of a projection: one row per key, one cell per requested column.
type Table struct {
	Columns []string                     `json:"columns"`
	Rows    map[string][]litetable.Value `json:"rows"`
}

// Keys returns the row keys in lexical order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.Rows))
	for k := range t.Rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Cell returns the value of column for rowKey. Missing rows and columns read as Null.
func (t *Table) Cell(rowKey, column string) litetable.Value {
	row, ok := t.Rows[rowKey]
	if !ok {
		return litetable.Null()
	}
	for i, c := range t.Columns {
		if c == column {
			return row[i]
		}
	}
	return litetable.Null()
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// QueryStats are the cost observables of a single projection.
type QueryStats struct {
	QueryID          string        `json:"queryId"`
	Elapsed          time.Duration `json:"elapsed"`
	FamiliesScanned  int           `json:"familiesScanned"`
	FamiliesExcluded int           `json:"familiesExcluded"`
	FamiliesTotal    int           `json:"familiesTotal"`
	ColumnsIgnored   int           `json:"columnsIgnored"`
	RowsScanned      int           `json:"rowsScanned"`
}

// ElapsedMs is Elapsed as fractional milliseconds.
func (s *QueryStats) ElapsedMs() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// Projection reads the requested columns for every row key present in at least one of the
// families owning them. No other family is read.
func (m *Manager) Projection(columns []string) (*Table, *QueryStats, error) {
	start := time.Now()

	if len(columns) == 0 {
		return nil, nil, newError(ErrEmptyProjection, "at least one column is required")
	}

	owners := make([]string, len(columns))
	seen := make(map[string]struct{}, len(columns))
	var targets []string
	for i, c := range columns {
		if _, dup := seen[c]; dup {
			return nil, nil, newError(ErrDuplicateColumn, "%s", c)
		}
		seen[c] = struct{}{}

		family, err := m.catalog.FamilyOf(c)
		if err != nil {
			return nil, nil, newError(ErrUnknownColumn, "%s", c)
		}
		owners[i] = family
		if !contains(targets, family) {
			targets = append(targets, family)
		}
	}

	table := &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make(map[string][]litetable.Value),
	}

	var scanned int
	err := m.storage.Scan(targets, func(v *storage.View) error {
		for key := range v.Keys() {
			row := make([]litetable.Value, len(columns))
			// one lookup per family per key, shared by all its columns
			records := make(map[string]litetable.Record, len(targets))
			for i, c := range columns {
				rec, ok := records[owners[i]]
				if !ok {
					got, found, err := v.Get(owners[i], key)
					if err != nil {
						return err
					}
					if !found {
						got = litetable.Record{}
					}
					records[owners[i]] = got
					rec = got
				}
				row[i] = rec[c]
			}
			table.Rows[key] = row
		}
		scanned = v.FamiliesRead()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	total := m.catalog.FamilyCount()
	stats := &QueryStats{
		QueryID:          uuid.NewString(),
		Elapsed:          time.Since(start),
		FamiliesScanned:  scanned,
		FamiliesExcluded: total - scanned,
		FamiliesTotal:    total,
		ColumnsIgnored:   m.catalog.ColumnCount() - len(columns),
		RowsScanned:      table.Len(),
	}

	m.metrics.ObserveScan(litetable.OperationProjection, stats.Elapsed, stats.FamiliesScanned,
		total, stats.RowsScanned)
	log.Debug().
		Str("queryId", stats.QueryID).
		Strs("columns", columns).
		Strs("families", targets).
		Int("rows", stats.RowsScanned).
		Int("familiesExcluded", stats.FamiliesExcluded).
		Dur("elapsed", stats.Elapsed).
		Msg("projection complete")

	return table, stats, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
