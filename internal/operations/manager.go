package operations

import (
	"errors"
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/litetable/litetable-analytics/internal/schema"
	"github.com/litetable/litetable-analytics/internal/storage"
	"time"
)

//go:generate mockgen -destination=manager_mock.go -package=operations -source=manager.go

const defaultDimensionLabel = "Unknown"

type columnStore interface {
	PutRow(rowKey string, records map[string]litetable.Record) error
	Scan(families []string, fn func(v *storage.View) error) error
	Snapshot() map[string]map[string]litetable.Record
}

type recorder interface {
	ObserveInsert(ok bool, elapsed time.Duration)
	ObserveScan(op litetable.Operation, elapsed time.Duration, scanned, total, rows int)
}

// AggregationConfig controls how sparse rows are treated by the aggregation engine.
type AggregationConfig struct {
	// DefaultDimension labels rows that have no dimension value. Defaults to "Unknown".
	DefaultDimension string
	// DefaultMetric is summed for rows that have no metric value.
	DefaultMetric float64
	// SkipUnmatchedRows drops rows missing both the dimension and the metric instead of
	// counting them under DefaultDimension.
	SkipUnmatchedRows bool
}

// Manager is the single entry point into the engine: the write router, the projection query
// engine and the aggregation engine all run through it.
type Manager struct {
	catalog     *schema.Catalog
	storage     columnStore
	metrics     recorder
	clock       func() time.Time
	aggregation AggregationConfig
}

type Config struct {
	Catalog     *schema.Catalog
	Storage     columnStore
	Metrics     recorder
	Aggregation AggregationConfig
	// Clock stamps auto timestamp columns. Defaults to time.Now.
	Clock func() time.Time
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Catalog == nil {
		errGrp = append(errGrp, errors.New("catalog cannot be nil"))
	}
	if c.Storage == nil {
		errGrp = append(errGrp, errors.New("storage cannot be nil"))
	}
	if c.Metrics == nil {
		errGrp = append(errGrp, errors.New("metrics recorder cannot be nil"))
	}
	return errors.Join(errGrp...)
}

// New creates a new operations manager
func New(cfg *Config) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	agg := cfg.Aggregation
	if agg.DefaultDimension == "" {
		agg.DefaultDimension = defaultDimensionLabel
	}

	return &Manager{
		catalog:     cfg.Catalog,
		storage:     cfg.Storage,
		metrics:     cfg.Metrics,
		clock:       clock,
		aggregation: agg,
	}, nil
}

// DescribeSchema lists every (column, family) pair in declaration order.
func (m *Manager) DescribeSchema() []schema.Entry {
	return m.catalog.Describe()
}

// FamilyState returns a copy of every family's rows: the physical layout of the store.
func (m *Manager) FamilyState() map[string]map[string]litetable.Record {
	return m.storage.Snapshot()
}
