package grpc

import (
	"context"
	"errors"
	"fmt"
	"github.com/litetable/litetable-analytics/internal/litetable"
	ops "github.com/litetable/litetable-analytics/internal/operations"
	"github.com/litetable/litetable-analytics/internal/schema"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"testing"
	"time"
)

func requireCode(t *testing.T, err error, code codes.Code, msg string) {
	t.Helper()
	if code == codes.OK {
		require.NoError(t, err)
		return
	}
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, code, st.Code())
	require.Contains(t, st.Message(), msg)
}

func TestAnalytics_Insert(t *testing.T) {
	attrs := map[string]litetable.Value{"city": litetable.String("Madrid")}
	writtenAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		request         *InsertRequest
		mockSetup       func(m *Mockoperations)
		expectedCode    codes.Code
		expectedMessage string
	}{
		"missing row key and attributes": {
			request:         &InsertRequest{},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "rowKey required",
		},
		"unknown column": {
			request: &InsertRequest{RowKey: "k1", Attributes: attrs},
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().Insert("k1", attrs).
					Return(nil, fmt.Errorf("wrapped: %w", ops.ErrUnknownColumn))
			},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "failed to insert row",
		},
		"internal error": {
			request: &InsertRequest{RowKey: "k1", Attributes: attrs},
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().Insert("k1", attrs).Return(nil, errors.New("backend error"))
			},
			expectedCode:    codes.Internal,
			expectedMessage: "failed to insert row: backend error",
		},
		"successful request": {
			request: &InsertRequest{RowKey: "k1", Attributes: attrs},
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().Insert("k1", attrs).Return(&ops.InsertResult{
					RowKey:    "k1",
					Families:  []string{"geo_data"},
					WrittenAt: writtenAt,
				}, nil)
			},
			expectedCode: codes.OK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOps := NewMockoperations(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockOps)
			}

			svc := &analytics{operations: mockOps}
			resp, err := svc.Insert(context.Background(), tc.request)
			requireCode(t, err, tc.expectedCode, tc.expectedMessage)
			if tc.expectedCode == codes.OK {
				require.Equal(t, &InsertResponse{
					RowKey:    "k1",
					Families:  []string{"geo_data"},
					WrittenAt: writtenAt,
				}, resp)
			}
		})
	}
}

func TestAnalytics_Projection(t *testing.T) {
	tests := map[string]struct {
		request         *ProjectionRequest
		mockSetup       func(m *Mockoperations)
		expectedCode    codes.Code
		expectedMessage string
	}{
		"no columns": {
			request:         &ProjectionRequest{},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "columns required",
		},
		"duplicate column": {
			request: &ProjectionRequest{Columns: []string{"city", "city"}},
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().Projection([]string{"city", "city"}).
					Return(nil, nil, fmt.Errorf("%w: city", ops.ErrDuplicateColumn))
			},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "duplicate column: city",
		},
		"successful request": {
			request: &ProjectionRequest{Columns: []string{"city"}},
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().Projection([]string{"city"}).Return(&ops.Table{
					Columns: []string{"city"},
					Rows: map[string][]litetable.Value{
						"b": {litetable.String("Bilbao")},
						"a": {litetable.String("Avila")},
					},
				}, &ops.QueryStats{
					QueryID:          "q1",
					Elapsed:          1500 * time.Microsecond,
					FamiliesScanned:  1,
					FamiliesExcluded: 2,
					FamiliesTotal:    3,
					ColumnsIgnored:   6,
					RowsScanned:      2,
				}, nil)
			},
			expectedCode: codes.OK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOps := NewMockoperations(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockOps)
			}

			svc := &analytics{operations: mockOps}
			resp, err := svc.Projection(context.Background(), tc.request)
			requireCode(t, err, tc.expectedCode, tc.expectedMessage)
			if tc.expectedCode != codes.OK {
				return
			}

			require.Equal(t, &ProjectionResponse{
				Columns: []string{"city"},
				Rows: []ProjectedRow{
					{Key: "a", Values: []litetable.Value{litetable.String("Avila")}},
					{Key: "b", Values: []litetable.Value{litetable.String("Bilbao")}},
				},
				Stats: ProjectionStats{
					QueryID:          "q1",
					ElapsedMs:        1.5,
					FamiliesScanned:  1,
					FamiliesExcluded: 2,
					FamiliesTotal:    3,
					ColumnsIgnored:   6,
					RowsScanned:      2,
				},
			}, resp)
		})
	}
}

func TestAnalytics_Aggregate(t *testing.T) {
	result := &ops.AggregateResult{
		Groups: map[string]float64{"Barcelona": 20, "Madrid": 80},
		Stats:  ops.AggregateStats{QueryID: "q1", FamiliesScanned: 2, FamiliesTotal: 3},
	}
	custom := &AggregateRequest{
		DimensionFamily: "user_data",
		DimensionColumn: "name",
		MetricFamily:    "metrics_data",
		MetricColumn:    "visits",
	}

	tests := map[string]struct {
		request         *AggregateRequest
		mockSetup       func(m *Mockoperations)
		expectedCode    codes.Code
		expectedMessage string
	}{
		"default aggregation": {
			request: &AggregateRequest{},
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().Aggregate().Return(result, nil)
			},
			expectedCode: codes.OK,
		},
		"custom aggregation": {
			request: custom,
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().AggregateBy(ops.AggregateQuery{
					DimensionFamily: "user_data",
					DimensionColumn: "name",
					MetricFamily:    "metrics_data",
					MetricColumn:    "visits",
				}).Return(result, nil)
			},
			expectedCode: codes.OK,
		},
		"family mismatch": {
			request: custom,
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().AggregateBy(gomock.Any()).
					Return(nil, fmt.Errorf("%w: name", ops.ErrColumnFamilyMismatch))
			},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "failed to aggregate",
		},
		"internal error": {
			request: &AggregateRequest{},
			mockSetup: func(m *Mockoperations) {
				m.EXPECT().Aggregate().Return(nil, errors.New("boom"))
			},
			expectedCode:    codes.Internal,
			expectedMessage: "failed to aggregate: boom",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOps := NewMockoperations(ctrl)
			tc.mockSetup(mockOps)

			svc := &analytics{operations: mockOps}
			resp, err := svc.Aggregate(context.Background(), tc.request)
			requireCode(t, err, tc.expectedCode, tc.expectedMessage)
			if tc.expectedCode != codes.OK {
				return
			}

			require.Equal(t, []Group{
				{Dimension: "Madrid", Total: 80},
				{Dimension: "Barcelona", Total: 20},
			}, resp.Groups)
			require.Equal(t, 2, resp.Stats.FamiliesScanned)
			require.Equal(t, "q1", resp.Stats.QueryID)
		})
	}
}

func TestAnalytics_DescribeSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := schema.DefaultCatalog().Describe()
	mockOps := NewMockoperations(ctrl)
	mockOps.EXPECT().DescribeSchema().Return(entries)

	svc := &analytics{operations: mockOps}
	resp, err := svc.DescribeSchema(context.Background(), &DescribeSchemaRequest{})
	require.NoError(t, err)
	require.Equal(t, entries, resp.Columns)
}

func TestAnalytics_FamilyState(t *testing.T) {
	state := map[string]map[string]litetable.Record{
		"user_data": {"k1": {"name": litetable.String("Ana")}},
		"geo_data":  {},
	}

	tests := map[string]struct {
		request         *FamilyStateRequest
		want            map[string]map[string]litetable.Record
		expectedCode    codes.Code
		expectedMessage string
	}{
		"all families": {
			request: &FamilyStateRequest{},
			want:    state,
		},
		"filtered": {
			request: &FamilyStateRequest{Families: []string{"geo_data"}},
			want:    map[string]map[string]litetable.Record{"geo_data": {}},
		},
		"unknown family": {
			request:         &FamilyStateRequest{Families: []string{"pizza"}},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "unknown family: pizza",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOps := NewMockoperations(ctrl)
			mockOps.EXPECT().FamilyState().Return(state)

			svc := &analytics{operations: mockOps}
			resp, err := svc.FamilyState(context.Background(), tc.request)
			requireCode(t, err, tc.expectedCode, tc.expectedMessage)
			if tc.expectedCode == codes.OK {
				require.Equal(t, tc.want, resp.Families)
			}
		})
	}
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	require.Equal(t, "json", c.Name())

	b, err := c.Marshal(&InsertRequest{
		RowKey:     "k1",
		Attributes: map[string]litetable.Value{"visits": litetable.Number(3)},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"rowKey":"k1","attributes":{"visits":{"type":"number","value":3}}}`,
		string(b))

	var got InsertRequest
	require.NoError(t, c.Unmarshal(b, &got))
	require.Equal(t, litetable.Number(3), got.Attributes["visits"])
}
