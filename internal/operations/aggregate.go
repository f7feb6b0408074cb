package operations

import (
	"github.com/google/uuid"
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/litetable/litetable-analytics/internal/schema"
	"github.com/litetable/litetable-analytics/internal/storage"
	"github.com/rs/zerolog/log"
	"sort"
	"time"
)

// AggregateQuery joins a dimension family and a metric family on row key, groups by the
// dimension column and sums the metric column.
type AggregateQuery struct {
	DimensionFamily string
	DimensionColumn string
	MetricFamily    string
	MetricColumn    string
	// DefaultDimension and DefaultMetric override the manager's aggregation config when set.
	DefaultDimension string
	DefaultMetric    *float64
}

// AggregateStats are the cost observables of a single aggregation.
type AggregateStats struct {
	QueryID         string        `json:"queryId"`
	Elapsed         time.Duration `json:"elapsed"`
	FamiliesScanned int           `json:"familiesScanned"`
	FamiliesTotal   int           `json:"familiesTotal"`
	RowsScanned     int           `json:"rowsScanned"`
	RowsSkipped     int           `json:"rowsSkipped"`
}

func (s *AggregateStats) ElapsedMs() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

type AggregateResult struct {
	Groups map[string]float64 `json:"groups"`
	// NoData is set when the join produced no groups at all. It is not an error.
	NoData bool           `json:"noData"`
	Stats  AggregateStats `json:"stats"`
}

// Group is one dimension value and its total.
type Group struct {
	Dimension string  `json:"dimension"`
	Total     float64 `json:"total"`
}

// Ranked returns the groups ordered by total, largest first. Ties break on dimension.
func (r *AggregateResult) Ranked() []Group {
	out := make([]Group, 0, len(r.Groups))
	for d, t := range r.Groups {
		out = append(out, Group{Dimension: d, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Dimension < out[j].Dimension
	})
	return out
}

// Aggregate sums ad spend per city. Only the geo and metrics families are read.
func (m *Manager) Aggregate() (*AggregateResult, error) {
	return m.AggregateBy(AggregateQuery{
		DimensionFamily: schema.FamilyGeo,
		DimensionColumn: schema.ColumnCity,
		MetricFamily:    schema.FamilyMetrics,
		MetricColumn:    schema.ColumnAdSpend,
	})
}

// AggregateBy runs an arbitrary dimension/metric aggregation.
func (m *Manager) AggregateBy(q AggregateQuery) (*AggregateResult, error) {
	start := time.Now()

	if err := m.validateAggregate(q); err != nil {
		return nil, err
	}

	defaultDimension := m.aggregation.DefaultDimension
	if q.DefaultDimension != "" {
		defaultDimension = q.DefaultDimension
	}
	defaultMetric := m.aggregation.DefaultMetric
	if q.DefaultMetric != nil {
		defaultMetric = *q.DefaultMetric
	}

	families := []string{q.DimensionFamily}
	if q.MetricFamily != q.DimensionFamily {
		families = append(families, q.MetricFamily)
	}

	groups := make(map[string]float64)
	var rows, skipped, scanned int
	err := m.storage.Scan(families, func(v *storage.View) error {
		for key := range v.Keys() {
			rows++

			dimRec, _, err := v.Get(q.DimensionFamily, key)
			if err != nil {
				return err
			}
			metricRec, _, err := v.Get(q.MetricFamily, key)
			if err != nil {
				return err
			}

			dimension, hasDimension := dimRec[q.DimensionColumn].Str()
			metric, hasMetric := metricRec[q.MetricColumn].Num()
			if !hasDimension && !hasMetric && m.aggregation.SkipUnmatchedRows {
				skipped++
				continue
			}
			if !hasDimension {
				dimension = defaultDimension
			}
			if !hasMetric {
				metric = defaultMetric
			}
			groups[dimension] += metric
		}
		scanned = v.FamiliesRead()
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := m.catalog.FamilyCount()
	result := &AggregateResult{
		Groups: groups,
		NoData: len(groups) == 0,
		Stats: AggregateStats{
			QueryID:         uuid.NewString(),
			Elapsed:         time.Since(start),
			FamiliesScanned: scanned,
			FamiliesTotal:   total,
			RowsScanned:     rows,
			RowsSkipped:     skipped,
		},
	}

	m.metrics.ObserveScan(litetable.OperationAggregate, result.Stats.Elapsed, scanned, total, rows)
	log.Debug().
		Str("queryId", result.Stats.QueryID).
		Str("dimension", q.DimensionColumn).
		Str("metric", q.MetricColumn).
		Int("groups", len(groups)).
		Int("rows", rows).
		Int("skipped", skipped).
		Dur("elapsed", result.Stats.Elapsed).
		Msg("aggregation complete")

	return result, nil
}

func (m *Manager) validateAggregate(q AggregateQuery) error {
	checks := []struct {
		family string
		column string
		kind   litetable.Kind
	}{
		{family: q.DimensionFamily, column: q.DimensionColumn, kind: litetable.KindString},
		{family: q.MetricFamily, column: q.MetricColumn, kind: litetable.KindNumber},
	}

	for _, c := range checks {
		col, ok := m.catalog.Column(c.column)
		if !ok {
			return newError(ErrUnknownColumn, "%s", c.column)
		}
		if col.Family != c.family {
			return newError(ErrColumnFamilyMismatch, "%s is owned by %s, not %s", c.column,
				col.Family, c.family)
		}
		if col.Kind != c.kind {
			return newError(ErrTypeMismatch, "column %s is %s, aggregation needs %s", c.column,
				col.Kind, c.kind)
		}
	}
	return nil
}
