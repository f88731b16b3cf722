package shaper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendFixture() []map[string]any {
	return []map[string]any{
		{"period": "Feb", "region_name": "North", "value": 5},
		{"period": "Jan", "region_name": "North", "value": 3},
		{"period": "Jan", "region_name": "South", "value": 7},
		{"period": "Mar", "region_name": "East", "value": 1},
		{"period": "Mar", "region_name": "East", "value": 2},
	}
}

func TestPivotFillsEveryCell(t *testing.T) {
	series := Pivot(Tuples(trendFixture(), TrendOptions{NameKeys: []string{"region_name"}}), false)

	require.Len(t, series.Rows, len(series.Periods))
	assert.Equal(t, []string{"Feb", "Jan", "Mar"}, series.Periods)
	assert.Equal(t, []string{"North", "South", "East"}, series.Names)
	for _, row := range series.Rows {
		assert.Len(t, row.Values, len(series.Names))
		for _, name := range series.Names {
			_, ok := row.Values[name]
			assert.True(t, ok, "missing %s/%s", row.Period, name)
		}
	}
	assert.Equal(t, 0.0, series.Rows[0].Values["South"])
	assert.Equal(t, 3.0, series.Rows[2].Values["East"])
}

func TestPivotMonthlyOrdering(t *testing.T) {
	series := Pivot(Tuples(trendFixture(), TrendOptions{NameKeys: []string{"region_name"}}), true)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, series.Periods)
	assert.Equal(t, "Jan", series.Rows[0].Period)
	assert.Equal(t, 7.0, series.Rows[0].Values["South"])
}

func TestPivotIdempotent(t *testing.T) {
	first := Pivot(Tuples(trendFixture(), TrendOptions{NameKeys: []string{"region_name"}}), true)
	second := Pivot(Flatten(first), true)
	assert.Equal(t, first, second)
}

func TestTrendRowMarshalsFlat(t *testing.T) {
	series := Pivot([]TrendTuple{
		{Period: "Jan", Name: "B", Value: 2},
		{Period: "Jan", Name: "A", Value: 1},
	}, false)

	raw, err := json.Marshal(series.Rows[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"period":"Jan","B":2,"A":1}`, string(raw))
	assert.Equal(t, `{"period":"Jan","B":2,"A":1}`, string(raw))
}

func TestTrendAssignsColorsPerCategory(t *testing.T) {
	palette := Palette{"#1", "#2"}
	series := Trend(trendFixture(), TrendOptions{NameKeys: []string{"region_name"}, Palette: palette})
	assert.Equal(t, []string{"#1", "#2", "#1"}, series.Colors)
}

func TestTuplesSkipsRecordsWithoutPeriod(t *testing.T) {
	tuples := Tuples([]map[string]any{{"name": "x", "value": 1}, {"month": "Apr", "name": "x"}}, TrendOptions{})
	require.Len(t, tuples, 1)
	assert.Equal(t, "Apr", tuples[0].Period)
	assert.Equal(t, 0.0, tuples[0].Value)
}

func TestSortPeriodsUnknownSortsFirst(t *testing.T) {
	got := SortPeriods([]string{"Mar-2024", "jan-2024", "Q1", "Dec-2023"})
	assert.Equal(t, []string{"Q1", "jan-2024", "Mar-2024", "Dec-2023"}, got)
	assert.Equal(t, -1, MonthIndex("Q1"))
	assert.Equal(t, -1, MonthIndex(""))
	assert.Equal(t, 11, MonthIndex("December"))
}

func TestPivotEmpty(t *testing.T) {
	series := Pivot(nil, true)
	assert.True(t, series.Empty())
	assert.Empty(t, series.Rows)
}
