package storage

import (
	"fmt"
	"github.com/litetable/litetable-analytics/internal/litetable"
)

// Put replaces the record stored for rowKey in family. Records are never merged.
func (m *Manager) Put(family, rowKey string, record litetable.Record) error {
	return m.PutRow(rowKey, map[string]litetable.Record{family: record})
}

// PutRow writes one record per family for rowKey under a single exclusive lock. Every family
// is validated before anything is written, so either all records become visible or none do.
func (m *Manager) PutRow(rowKey string, records map[string]litetable.Record) error {
	if rowKey == "" {
		return fmt.Errorf("row key cannot be empty")
	}
	for f := range records {
		if !m.IsFamilyAllowed(f) {
			return fmt.Errorf("%w: %s", ErrFamilyNotAllowed, f)
		}
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	for f, record := range records {
		rec := record.Clone()
		if rec == nil {
			rec = make(litetable.Record)
		}
		m.families[f][rowKey] = rec
	}

	return nil
}
