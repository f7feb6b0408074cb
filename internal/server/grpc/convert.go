package grpc

import (
	ops "github.com/litetable/litetable-analytics/internal/operations"
)

func convertProjection(table *ops.Table, stats *ops.QueryStats) *ProjectionResponse {
	resp := &ProjectionResponse{
		Columns: table.Columns,
		Rows:    make([]ProjectedRow, 0, table.Len()),
		Stats: ProjectionStats{
			QueryID:          stats.QueryID,
			ElapsedMs:        stats.ElapsedMs(),
			FamiliesScanned:  stats.FamiliesScanned,
			FamiliesExcluded: stats.FamiliesExcluded,
			FamiliesTotal:    stats.FamiliesTotal,
			ColumnsIgnored:   stats.ColumnsIgnored,
			RowsScanned:      stats.RowsScanned,
		},
	}

	for _, key := range table.Keys() {
		resp.Rows = append(resp.Rows, ProjectedRow{
			Key:    key,
			Values: table.Rows[key],
		})
	}
	return resp
}

func convertAggregate(result *ops.AggregateResult) *AggregateResponse {
	ranked := result.Ranked()
	groups := make([]Group, len(ranked))
	for i, g := range ranked {
		groups[i] = Group{Dimension: g.Dimension, Total: g.Total}
	}

	return &AggregateResponse{
		Groups: groups,
		NoData: result.NoData,
		Stats: AggregateStats{
			QueryID:         result.Stats.QueryID,
			ElapsedMs:       result.Stats.ElapsedMs(),
			FamiliesScanned: result.Stats.FamiliesScanned,
			FamiliesTotal:   result.Stats.FamiliesTotal,
			RowsScanned:     result.Stats.RowsScanned,
			RowsSkipped:     result.Stats.RowsSkipped,
		},
	}
}
