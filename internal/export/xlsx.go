// Package export renders maximized-view rank tables as spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"dashboard-service/internal/dashboard"
)

var rankHeaders = []interface{}{"Rank", "Name", "Value", "Share %"}

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func FileName(report, tag string) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", report, tag, time.Now().Format("2006-01-02"))
}

func sheetName(title string) string {
	// Excel caps sheet names at 31 characters and rejects a few symbols.
	out := make([]rune, 0, 31)
	for _, r := range title {
		switch r {
		case '/', '\\', '?', '*', '[', ']', ':':
			r = '-'
		}
		out = append(out, r)
		if len(out) == 31 {
			break
		}
	}
	if len(out) == 0 {
		return "Sheet1"
	}
	return string(out)
}

func WriteMaxView(w io.Writer, mv dashboard.MaximizedView) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(mv.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &rankHeaders); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", style); err != nil {
		return err
	}

	for i, row := range mv.Table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Rank, row.Name, row.Value, fmt.Sprintf("%.2f", row.Share)}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(2, len(mv.Table)+2)
	if err != nil {
		return err
	}
	totals := []interface{}{"Total", mv.Total}
	if err := f.SetSheetRow(sheet, totalCell, &totals); err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "B", "B", 35)
	_ = f.SetColWidth(sheet, "C", "D", 15)

	return f.Write(w)
}
