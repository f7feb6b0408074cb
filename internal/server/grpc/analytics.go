package grpc

import (
	"context"
	"errors"
	"github.com/litetable/litetable-analytics/internal/litetable"
	ops "github.com/litetable/litetable-analytics/internal/operations"
	"github.com/litetable/litetable-analytics/internal/schema"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"time"
)

//go:generate mockgen -destination=analytics_mock.go -package=grpc -source=analytics.go

type operations interface {
	Insert(rowKey string, attributes map[string]litetable.Value) (*ops.InsertResult, error)
	Projection(columns []string) (*ops.Table, *ops.QueryStats, error)
	Aggregate() (*ops.AggregateResult, error)
	AggregateBy(q ops.AggregateQuery) (*ops.AggregateResult, error)
	DescribeSchema() []schema.Entry
	FamilyState() map[string]map[string]litetable.Record
}

type analytics struct {
	operations operations
}

// toStatus maps caller mistakes to InvalidArgument and everything else to Internal.
func toStatus(err error, action string) error {
	if ops.IsInvalidArgument(err) {
		return status.Errorf(codes.InvalidArgument, "%s: %v", action, err)
	}
	return status.Errorf(codes.Internal, "%s: %v", action, err)
}

func (a *analytics) validateInsert(msg *InsertRequest) error {
	var errGrp []error
	if msg.RowKey == "" {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "rowKey required"))
	}
	if len(msg.Attributes) == 0 {
		errGrp = append(errGrp, status.Errorf(codes.InvalidArgument, "attributes required"))
	}

	return errors.Join(errGrp...)
}

func (a *analytics) Insert(ctx context.Context, msg *InsertRequest) (*InsertResponse, error) {
	start := time.Now()
	if err := a.validateInsert(msg); err != nil {
		return nil, err
	}

	result, err := a.operations.Insert(msg.RowKey, msg.Attributes)
	if err != nil {
		return nil, toStatus(err, "failed to insert row")
	}

	log.Debug().Msgf("Insert latency: %v", time.Since(start))
	return &InsertResponse{
		RowKey:    result.RowKey,
		Families:  result.Families,
		WrittenAt: result.WrittenAt,
	}, nil
}

func (a *analytics) Projection(ctx context.Context, msg *ProjectionRequest) (
	*ProjectionResponse, error) {
	if len(msg.Columns) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "columns required")
	}

	table, stats, err := a.operations.Projection(msg.Columns)
	if err != nil {
		return nil, toStatus(err, "failed to run projection")
	}

	log.Debug().Msgf("Projection latency: %v", stats.Elapsed)
	return convertProjection(table, stats), nil
}

func (a *analytics) Aggregate(ctx context.Context, msg *AggregateRequest) (*AggregateResponse,
	error) {
	var (
		result *ops.AggregateResult
		err    error
	)
	if msg.isDefault() {
		result, err = a.operations.Aggregate()
	} else {
		result, err = a.operations.AggregateBy(ops.AggregateQuery{
			DimensionFamily:  msg.DimensionFamily,
			DimensionColumn:  msg.DimensionColumn,
			MetricFamily:     msg.MetricFamily,
			MetricColumn:     msg.MetricColumn,
			DefaultDimension: msg.DefaultDimension,
			DefaultMetric:    msg.DefaultMetric,
		})
	}
	if err != nil {
		return nil, toStatus(err, "failed to aggregate")
	}

	log.Debug().Msgf("Aggregate latency: %v", result.Stats.Elapsed)
	return convertAggregate(result), nil
}

func (a *analytics) DescribeSchema(ctx context.Context, _ *DescribeSchemaRequest) (
	*DescribeSchemaResponse, error) {
	return &DescribeSchemaResponse{Columns: a.operations.DescribeSchema()}, nil
}

func (a *analytics) FamilyState(ctx context.Context, msg *FamilyStateRequest) (
	*FamilyStateResponse, error) {
	state := a.operations.FamilyState()
	if len(msg.Families) == 0 {
		return &FamilyStateResponse{Families: state}, nil
	}

	filtered := make(map[string]map[string]litetable.Record, len(msg.Families))
	for _, f := range msg.Families {
		rows, ok := state[f]
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown family: %s", f)
		}
		filtered[f] = rows
	}
	return &FamilyStateResponse{Families: filtered}, nil
}
