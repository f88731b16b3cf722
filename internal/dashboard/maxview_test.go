package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-service/internal/shaper"
)

func TestEveryMaxViewHasChartPanel(t *testing.T) {
	tags := MaxViews()
	assert.Len(t, tags, 40)
	for _, tag := range tags {
		key, ok := maxViews[tag]
		require.True(t, ok)
		panel, ok := PanelFor(key)
		require.True(t, ok, "tag %s", tag)
		assert.NotEqual(t, KindTable, panel.Kind)
		assert.NotEmpty(t, panel.Title)
	}
}

func TestParseMaxView(t *testing.T) {
	tag, err := ParseMaxView("topitems")
	require.NoError(t, err)
	assert.Equal(t, MaxTopItems, tag)

	_, err = ParseMaxView("summaryTable")
	assert.ErrorIs(t, err, ErrUnknownMaxView)
}

func TestBuildMaxViewUnknownTag(t *testing.T) {
	_, err := BuildMaxView(MaxView("nope"), shaper.Payload{"charts": map[string]any{}})
	assert.ErrorIs(t, err, ErrUnknownMaxView)
}

func TestBuildMaxViewPrefersFullListUnsliced(t *testing.T) {
	full := make([]any, 0, 12)
	for i := 1; i <= 12; i++ {
		full = append(full, map[string]any{"item_name": string(rune('a' + i - 1)), "total_sales": float64(i)})
	}
	payload := shaper.Payload{"charts": map[string]any{
		"top_items":      full[:10],
		"top_items_full": full,
	}}

	mv, err := BuildMaxView(MaxTopItems, payload)
	require.NoError(t, err)
	assert.Len(t, mv.Series, 12)
	require.Len(t, mv.Table, 12)
	assert.Equal(t, 1, mv.Table[0].Rank)
	assert.Equal(t, "l", mv.Table[0].Name)
	assert.Equal(t, 12.0, mv.Table[0].Value)
	assert.InDelta(t, 12.0/78.0*100, mv.Table[0].Share, 1e-9)
	assert.Equal(t, 78.0, mv.Total)
}

func TestBuildMaxViewFallsBackToRegularList(t *testing.T) {
	payload := shaper.Payload{"charts": map[string]any{
		"region_sales": []any{
			map[string]any{"region_name": "North", "value": 2},
			map[string]any{"region_name": "South", "value": 2},
			map[string]any{"region_name": "East", "value": 5},
		},
	}}

	mv, err := BuildMaxView(MaxRegionSales, payload)
	require.NoError(t, err)
	require.Len(t, mv.Table, 3)
	assert.Equal(t, "East", mv.Table[0].Name)
	// ties keep source order
	assert.Equal(t, "North", mv.Table[1].Name)
	assert.Equal(t, "South", mv.Table[2].Name)
	assert.Equal(t, shaper.RegionColors[2], mv.Table[0].Color)
}

func TestBuildMaxViewTrendRanksCategories(t *testing.T) {
	payload := shaper.Payload{"charts": map[string]any{
		"visit_trend": []any{
			map[string]any{"date": "2024-01-01", "region_name": "North", "visit_count": 1},
			map[string]any{"date": "2024-01-02", "region_name": "North", "visit_count": 1},
			map[string]any{"date": "2024-01-01", "region_name": "South", "visit_count": 5},
		},
	}}

	mv, err := BuildMaxView(MaxVisitTrend, payload)
	require.NoError(t, err)
	require.NotNil(t, mv.Trend)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, mv.Trend.Periods)
	require.Len(t, mv.Table, 2)
	assert.Equal(t, "South", mv.Table[0].Name)
	assert.Equal(t, 5.0, mv.Table[0].Value)
	assert.Equal(t, 2.0, mv.Table[1].Value)
}

func TestBuildMaxViewEmptyData(t *testing.T) {
	mv, err := BuildMaxView(MaxVisitStatus, shaper.Payload{"level": "company"})
	require.NoError(t, err)
	assert.True(t, mv.Empty)
	assert.NotNil(t, mv.Table)
	assert.Empty(t, mv.Table)
}
