package grpc

import (
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/litetable/litetable-analytics/internal/schema"
	"time"
)

type InsertRequest struct {
	RowKey     string                     `json:"rowKey"`
	Attributes map[string]litetable.Value `json:"attributes"`
}

type InsertResponse struct {
	RowKey    string    `json:"rowKey"`
	Families  []string  `json:"families"`
	WrittenAt time.Time `json:"writtenAt"`
}

type ProjectionRequest struct {
	Columns []string `json:"columns"`
}

// ProjectedRow is one row of a projection, cells in request column order.
type ProjectedRow struct {
	Key    string            `json:"key"`
	Values []litetable.Value `json:"values"`
}

type ProjectionStats struct {
	QueryID          string  `json:"queryId"`
	ElapsedMs        float64 `json:"elapsedMs"`
	FamiliesScanned  int     `json:"familiesScanned"`
	FamiliesExcluded int     `json:"familiesExcluded"`
	FamiliesTotal    int     `json:"familiesTotal"`
	ColumnsIgnored   int     `json:"columnsIgnored"`
	RowsScanned      int     `json:"rowsScanned"`
}

type ProjectionResponse struct {
	Columns []string        `json:"columns"`
	Rows    []ProjectedRow  `json:"rows"`
	Stats   ProjectionStats `json:"stats"`
}

// AggregateRequest with every field empty runs the default city / ad spend aggregation.
type AggregateRequest struct {
	DimensionFamily  string   `json:"dimensionFamily,omitempty"`
	DimensionColumn  string   `json:"dimensionColumn,omitempty"`
	MetricFamily     string   `json:"metricFamily,omitempty"`
	MetricColumn     string   `json:"metricColumn,omitempty"`
	DefaultDimension string   `json:"defaultDimension,omitempty"`
	DefaultMetric    *float64 `json:"defaultMetric,omitempty"`
}

func (r *AggregateRequest) isDefault() bool {
	return r.DimensionFamily == "" && r.DimensionColumn == "" && r.MetricFamily == "" &&
		r.MetricColumn == "" && r.DefaultDimension == "" && r.DefaultMetric == nil
}

type Group struct {
	Dimension string  `json:"dimension"`
	Total     float64 `json:"total"`
}

type AggregateStats struct {
	QueryID         string  `json:"queryId"`
	ElapsedMs       float64 `json:"elapsedMs"`
	FamiliesScanned int     `json:"familiesScanned"`
	FamiliesTotal   int     `json:"familiesTotal"`
	RowsScanned     int     `json:"rowsScanned"`
	RowsSkipped     int     `json:"rowsSkipped"`
}

type AggregateResponse struct {
	// Groups are ranked by total, largest first.
	Groups []Group        `json:"groups"`
	NoData bool           `json:"noData"`
	Stats  AggregateStats `json:"stats"`
}

type DescribeSchemaRequest struct{}

type DescribeSchemaResponse struct {
	Columns []schema.Entry `json:"columns"`
}

// FamilyStateRequest limits the response to Families when set.
type FamilyStateRequest struct {
	Families []string `json:"families,omitempty"`
}

type FamilyStateResponse struct {
	Families map[string]map[string]litetable.Record `json:"families"`
}
