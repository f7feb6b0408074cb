package storage

import (
	"fmt"
	"github.com/litetable/litetable-analytics/internal/litetable"
)

// Get returns a copy of the record last put for rowKey in family. The bool is false when the
// key was never written to that family.
func (m *Manager) Get(family, rowKey string) (litetable.Record, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	rec, ok := m.families[family][rowKey]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// Keys returns every row key written to family.
func (m *Manager) Keys(family string) map[string]struct{} {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return keysOf(m.families[family])
}

// KeysAcross returns the union of Keys over families.
func (m *Manager) KeysAcross(families ...string) map[string]struct{} {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return unionKeys(m.families, families)
}

// Snapshot returns a deep copy of every family, keyed by family name. It is the
// "physical layout" view of the store.
func (m *Manager) Snapshot() map[string]map[string]litetable.Record {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make(map[string]map[string]litetable.Record, len(m.families))
	for name, fam := range m.families {
		rows := make(map[string]litetable.Record, len(fam))
		for key, rec := range fam {
			rows[key] = rec.Clone()
		}
		out[name] = rows
	}
	return out
}

// Scan runs fn with a View restricted to families. The store is read locked for the whole
// call, so the key universe and every lookup inside fn come from one consistent state.
func (m *Manager) Scan(families []string, fn func(v *View) error) error {
	for _, f := range families {
		if !m.IsFamilyAllowed(f) {
			return fmt.Errorf("%w: %s", ErrFamilyNotAllowed, f)
		}
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	v := &View{
		families: make(map[string]family, len(families)),
		read:     make(map[string]struct{}, len(families)),
	}
	for _, f := range families {
		v.families[f] = m.families[f]
	}

	return fn(v)
}

// View is a read only window onto a subset of families. It must not escape the Scan callback.
type View struct {
	families map[string]family
	read     map[string]struct{}
}

// Keys returns the union of row keys across every family in scope.
func (v *View) Keys() map[string]struct{} {
	names := make([]string, 0, len(v.families))
	for f := range v.families {
		v.read[f] = struct{}{}
		names = append(names, f)
	}
	return unionKeys(v.families, names)
}

// Get reads one record. Reading a family outside the scope is an error, never a silent miss.
func (v *View) Get(family, rowKey string) (litetable.Record, bool, error) {
	fam, ok := v.families[family]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrFamilyNotInScope, family)
	}
	v.read[family] = struct{}{}

	rec, ok := fam[rowKey]
	if !ok {
		return nil, false, nil
	}
	return rec.Clone(), true, nil
}

// FamiliesRead is the number of distinct families this view actually touched.
func (v *View) FamiliesRead() int {
	return len(v.read)
}

func keysOf(f family) map[string]struct{} {
	out := make(map[string]struct{}, len(f))
	for k := range f {
		out[k] = struct{}{}
	}
	return out
}

func unionKeys(all map[string]family, names []string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, name := range names {
		for k := range all[name] {
			out[k] = struct{}{}
		}
	}
	return out
}
