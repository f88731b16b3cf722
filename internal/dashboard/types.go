// Package dashboard selects a layout for a report and shapes the analytics payload into panels.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"dashboard-service/internal/shaper"
)

var (
	ErrUnknownReport  = errors.New("unknown report type")
	ErrUnknownMaxView = errors.New("unknown maximized view")
)

type ReportType string

const (
	ReportSales      ReportType = "sales"
	ReportCustomer   ReportType = "customer"
	ReportItem       ReportType = "item"
	ReportPOOrder    ReportType = "poOrder"
	ReportComparison ReportType = "comparison"
	ReportLoadUnload ReportType = "loadunload"
	ReportVisit      ReportType = "visit"
)

var reportTypes = []ReportType{
	ReportSales, ReportCustomer, ReportItem, ReportPOOrder, ReportComparison, ReportLoadUnload, ReportVisit,
}

func ReportTypes() []ReportType {
	return append([]ReportType(nil), reportTypes...)
}

// ParseReportType accepts any casing, so "poorder" resolves to ReportPOOrder.
func ParseReportType(raw string) (ReportType, error) {
	needle := strings.TrimSpace(raw)
	for _, rt := range reportTypes {
		if strings.EqualFold(string(rt), needle) {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, raw)
}

type DataLevel string

const (
	LevelCompany   DataLevel = "company"
	LevelRegion    DataLevel = "region"
	LevelArea      DataLevel = "area"
	LevelWarehouse DataLevel = "warehouse"
)

var dataLevels = []DataLevel{LevelCompany, LevelRegion, LevelArea, LevelWarehouse}

func DataLevels() []DataLevel {
	return append([]DataLevel(nil), dataLevels...)
}

func ParseDataLevel(raw string) (DataLevel, bool) {
	needle := strings.TrimSpace(raw)
	for _, lvl := range dataLevels {
		if strings.EqualFold(string(lvl), needle) {
			return lvl, true
		}
	}
	return "", false
}

// LevelOf reads the aggregation level the analytics API reported. The first key that
// parses wins; absent or unknown means company.
func LevelOf(p shaper.Payload) DataLevel {
	for _, key := range []string{"level", "dataLevel"} {
		if lvl, ok := ParseDataLevel(p.String(key, "")); ok {
			return lvl
		}
	}
	return LevelCompany
}

type Kind string

const (
	KindPie      Kind = "pie"
	KindDonut    Kind = "donut"
	KindColumn3D Kind = "column3d"
	KindArea     Kind = "area"
	KindBar      Kind = "bar"
	KindTable    Kind = "table"
)
