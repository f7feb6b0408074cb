package operations

import (
	"fmt"
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/rs/zerolog/log"
	"math"
	"sort"
	"strings"
	"time"
)

// InsertResult describes a successful logical insert.
type InsertResult struct {
	RowKey    string    `json:"key"`
	Families  []string  `json:"families"`
	WrittenAt time.Time `json:"writtenAt"`
}

// Insert splits attributes by owning family and writes one record per family for rowKey.
// Every attribute is validated first; on any error nothing is written.
func (m *Manager) Insert(rowKey string, attributes map[string]litetable.Value) (*InsertResult,
	error) {
	start := time.Now()

	records, err := m.route(rowKey, attributes)
	if err != nil {
		m.metrics.ObserveInsert(false, time.Since(start))
		return nil, err
	}

	if err = m.storage.PutRow(rowKey, records); err != nil {
		m.metrics.ObserveInsert(false, time.Since(start))
		return nil, fmt.Errorf("failed to write row %s: %w", rowKey, err)
	}

	// report families in catalog order
	written := make([]string, 0, len(records))
	for _, f := range m.catalog.Families() {
		if _, ok := records[f]; ok {
			written = append(written, f)
		}
	}

	elapsed := time.Since(start)
	m.metrics.ObserveInsert(true, elapsed)
	log.Debug().
		Str("key", rowKey).
		Strs("families", written).
		Dur("elapsed", elapsed).
		Msg("row inserted")

	return &InsertResult{
		RowKey:    rowKey,
		Families:  written,
		WrittenAt: start,
	}, nil
}

// route groups attributes into per-family records and fills auto timestamp columns.
func (m *Manager) route(rowKey string, attributes map[string]litetable.Value) (
	map[string]litetable.Record, error) {
	if strings.TrimSpace(rowKey) == "" {
		return nil, newError(ErrMissingRowKey, "a non-empty row key is required")
	}
	if len(attributes) == 0 {
		return nil, newError(ErrEmptyInsert, "row %s", rowKey)
	}

	// walk columns in a stable order so error messages are deterministic
	columns := make([]string, 0, len(attributes))
	for c := range attributes {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	// unknown columns are reported before any value is checked
	var unknown []string
	for _, name := range columns {
		if _, ok := m.catalog.Column(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, newError(ErrUnknownColumn, "%s", strings.Join(unknown, ", "))
	}

	records := make(map[string]litetable.Record)
	for _, name := range columns {
		col, _ := m.catalog.Column(name)
		value := attributes[name]
		if !value.IsNull() && value.Kind() != col.Kind {
			return nil, newError(ErrTypeMismatch, "column %s expects %s, got %s", name,
				col.Kind, value.Kind())
		}
		if n, ok := value.Num(); ok && (math.IsNaN(n) || math.IsInf(n, 0)) {
			return nil, newError(ErrInvalidNumber, "column %s: %v", name, n)
		}

		if _, ok := records[col.Family]; !ok {
			records[col.Family] = make(litetable.Record)
		}
		records[col.Family][name] = value
	}

	// only families already touched by this insert get their auto columns stamped
	now := m.clock()
	for family, rec := range records {
		for _, col := range m.catalog.ColumnsOf(family) {
			if !col.AutoTimestamp {
				continue
			}
			if v, ok := rec[col.Name]; !ok || v.IsNull() {
				rec[col.Name] = litetable.Timestamp(now)
			}
		}
	}

	return records, nil
}
