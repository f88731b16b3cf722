package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dashboard-service/internal/dashboard"
)

func TestWriteMaxView(t *testing.T) {
	mv := dashboard.MaximizedView{
		Tag:   dashboard.MaxRegionSales,
		Title: "Region Wise Sales",
		Table: []dashboard.RankRow{
			{Rank: 1, Name: "East", Value: 5, Share: 62.5},
			{Rank: 2, Name: "North", Value: 3, Share: 37.5},
		},
		Total: 8,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMaxView(&buf, mv))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Region Wise Sales")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Rank", "Name", "Value", "Share %"}, rows[0])
	assert.Equal(t, []string{"1", "East", "5", "62.50"}, rows[1])
	assert.Equal(t, []string{"", "Total", "8"}, rows[3])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Load - Unload Trend", sheetName("Load / Unload Trend"))
	assert.Equal(t, "Sheet1", sheetName(""))
	assert.Len(t, sheetName(strings.Repeat("a", 40)), 31)
}

func TestFileName(t *testing.T) {
	name := FileName("sales", "topItems")
	assert.True(t, strings.HasPrefix(name, "sales_topItems_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
}
