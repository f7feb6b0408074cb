package storage

func (m *Manager) IsFamilyAllowed(family string) bool {
	// the family set is fixed at New, no lock needed
	for _, f := range m.allowedFamilies {
		if f == family {
			return true
		}
	}
	return false
}

// GetFamilies returns the configured families in declaration order.
func (m *Manager) GetFamilies() []string {
	// create a copy of the slice so callers cannot reorder ours
	out := make([]string, len(m.allowedFamilies))
	copy(out, m.allowedFamilies)
	return out
}

// RowCount is the number of row keys that have a record in family.
func (m *Manager) RowCount(family string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.families[family])
}
