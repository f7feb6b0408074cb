package operations

import (
	"errors"
	"github.com/litetable/litetable-analytics/internal/litetable"
	"github.com/litetable/litetable-analytics/internal/schema"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestManager_ProjectionErrors(t *testing.T) {
	env := newTestEnv(t, AggregationConfig{})

	tests := map[string]struct {
		columns []string
		err     error
	}{
		"nil columns":      {err: ErrEmptyProjection},
		"empty columns":    {columns: []string{}, err: ErrEmptyProjection},
		"unknown column":   {columns: []string{"city", "bogus_col"}, err: ErrUnknownColumn},
		"duplicate column": {columns: []string{"city", "city"}, err: ErrDuplicateColumn},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			table, stats, err := env.manager.Projection(tc.columns)
			require.True(t, errors.Is(err, tc.err), "expected %v to wrap %v", err, tc.err)
			require.True(t, IsInvalidArgument(err))
			require.Nil(t, table)
			require.Nil(t, stats)
		})
	}
}

func TestManager_ProjectionRoundTrip(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, AggregationConfig{})

	row := fullRow("Ana", "Madrid", 50)
	_, err := env.manager.Insert("k1", row)
	req.NoError(err)

	all := schema.DefaultCatalog().AllColumns()
	table, stats, err := env.manager.Projection(all)
	req.NoError(err)
	req.Equal(all, table.Columns)
	req.Equal([]string{"k1"}, table.Keys())

	for col, want := range row {
		req.Equal(want, table.Cell("k1", col), "column %s", col)
	}
	session, ok := table.Cell("k1", "last_session").Time()
	req.True(ok)
	req.Equal(fixedNow, session)

	req.Equal(3, stats.FamiliesScanned)
	req.Equal(0, stats.FamiliesExcluded)
	req.Equal(3, stats.FamiliesTotal)
	req.Equal(0, stats.ColumnsIgnored)
	req.Equal(1, stats.RowsScanned)
	req.NotEmpty(stats.QueryID)
	req.GreaterOrEqual(stats.ElapsedMs(), 0.0)
}

func TestManager_ProjectionSparseRows(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, AggregationConfig{})

	_, err := env.manager.Insert("geo-only", map[string]litetable.Value{
		"city": litetable.String("Bilbao"),
	})
	req.NoError(err)
	_, err = env.manager.Insert("user-only", map[string]litetable.Value{
		"name": litetable.String("Luis"),
	})
	req.NoError(err)

	t.Run("city projection includes the geo only row", func(t *testing.T) {
		table, _, err := env.manager.Projection([]string{"city"})
		require.NoError(t, err)
		require.Equal(t, []string{"geo-only"}, table.Keys())
		require.Equal(t, litetable.String("Bilbao"), table.Cell("geo-only", "city"))
	})

	t.Run("name projection never sees the geo only row", func(t *testing.T) {
		table, _, err := env.manager.Projection([]string{"name"})
		require.NoError(t, err)
		require.Equal(t, []string{"user-only"}, table.Keys())
		require.True(t, table.Cell("geo-only", "name").IsNull())
	})

	t.Run("two family projection marks missing cells null", func(t *testing.T) {
		table, _, err := env.manager.Projection([]string{"name", "city"})
		require.NoError(t, err)
		require.Equal(t, []string{"geo-only", "user-only"}, table.Keys())
		require.True(t, table.Cell("geo-only", "name").IsNull())
		require.Equal(t, litetable.String("Bilbao"), table.Cell("geo-only", "city"))
		require.Equal(t, litetable.String("Luis"), table.Cell("user-only", "name"))
		require.True(t, table.Cell("user-only", "city").IsNull())
	})
}

func TestManager_ProjectionExclusionAccounting(t *testing.T) {
	env := newTestEnv(t, AggregationConfig{})
	_, err := env.manager.Insert("k1", fullRow("Ana", "Madrid", 50))
	require.NoError(t, err)

	tests := map[string]struct {
		columns  []string
		scanned  int
		excluded int
		ignored  int
	}{
		"single column": {
			columns: []string{"city"}, scanned: 1, excluded: 2, ignored: 6,
		},
		"two columns in one family": {
			columns: []string{"visits", "ad_spend"}, scanned: 1, excluded: 2, ignored: 5,
		},
		"two families": {
			columns: []string{"email", "ad_spend"}, scanned: 2, excluded: 1, ignored: 5,
		},
		"every family": {
			columns: []string{"name", "country", "visits"}, scanned: 3, excluded: 0, ignored: 4,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			table, stats, err := env.manager.Projection(tc.columns)
			req.NoError(err)
			req.Equal(tc.columns, table.Columns)
			req.Equal(tc.scanned, stats.FamiliesScanned)
			req.Equal(tc.excluded, stats.FamiliesExcluded)
			req.Equal(tc.ignored, stats.ColumnsIgnored)
		})
	}
}

func TestManager_ProjectionEmptyStore(t *testing.T) {
	env := newTestEnv(t, AggregationConfig{})

	table, stats, err := env.manager.Projection([]string{"city"})
	require.NoError(t, err)
	require.Equal(t, 0, table.Len())
	require.Equal(t, 1, stats.FamiliesScanned)
	require.Equal(t, 2, stats.FamiliesExcluded)
}

func TestTable_Cell(t *testing.T) {
	table := &Table{
		Columns: []string{"city"},
		Rows:    map[string][]litetable.Value{"k1": {litetable.String("Madrid")}},
	}
	require.Equal(t, litetable.String("Madrid"), table.Cell("k1", "city"))
	require.True(t, table.Cell("k2", "city").IsNull())
	require.True(t, table.Cell("k1", "name").IsNull())
}
