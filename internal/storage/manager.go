// Package storage holds the column families in memory.
//
// Each family independently maps a row key to a litetable.Record. A row key may exist in some
// families and not in others. A single RWMutex guards every family: a logical row write takes
// it exclusively across all the families it touches, and a scan holds it shared for the whole
// key union plus lookups, so readers never see a half applied row.
package storage

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/rs/zerolog/log"
	"sync"
)

var (
	ErrFamilyNotAllowed = errors.New("column family not allowed")
	ErrFamilyNotInScope = errors.New("column family not in scan scope")
)

// family is the in-memory table of a single column family: rowKey -> record.
type family map[string]litetable.Record

// Manager is the ColumnFamilyStore.
type Manager struct {
	mutex sync.RWMutex

	allowedFamilies []string
	families        map[string]family
}

type Config struct {
	// Families are created empty on New and live for the lifetime of the Manager.
	Families []string
}

func (c *Config) validate() error {
	var errGrp []error
	if len(c.Families) == 0 {
		errGrp = append(errGrp, errors.New("at least one column family is required"))
	}

	seen := make(map[string]struct{}, len(c.Families))
	for _, f := range c.Families {
		if f == "" {
			errGrp = append(errGrp, errors.New("column family name cannot be empty"))
			continue
		}
		if _, ok := seen[f]; ok {
			errGrp = append(errGrp, fmt.Errorf("duplicate column family: %s", f))
		}
		seen[f] = struct{}{}
	}
	return errors.Join(errGrp...)
}

// New creates a store with every configured family present and empty.
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		allowedFamilies: make([]string, len(cfg.Families)),
		families:        make(map[string]family, len(cfg.Families)),
	}
	copy(m.allowedFamilies, cfg.Families)
	for _, f := range cfg.Families {
		m.families[f] = make(family)
	}

	return m, nil
}

// Start has nothing to load: the store is memory only.
func (m *Manager) Start() error {
	log.Info().Strs("families", m.allowedFamilies).Msg("column family store ready")
	return nil
}

func (m *Manager) Stop() error {
	return nil
}

func (m *Manager) Name() string {
	return "Column Family Store"
}
