package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"dashboard-service/internal/shaper"
)

// MaxView tags one maximized chart+table pair. The set is closed: see ParseMaxView.
type MaxView string

const (
	MaxCompanySales      = MaxView(PanelCompanySales)
	MaxRegionSales       = MaxView(PanelRegionSales)
	MaxAreaSales         = MaxView(PanelAreaSales)
	MaxWarehouseSales    = MaxView(PanelWarehouseSales)
	MaxSalesTrend        = MaxView(PanelSalesTrend)
	MaxSalesCoverage     = MaxView(PanelSalesCoverage)
	MaxChannelSales      = MaxView(PanelChannelSales)
	MaxTopItems          = MaxView(PanelTopItems)
	MaxBottomItems       = MaxView(PanelBottomItems)
	MaxTopCustomers      = MaxView(PanelTopCustomers)
	MaxCustomerCompany   = MaxView(PanelCustomerCompany)
	MaxCustomerRegion    = MaxView(PanelCustomerRegion)
	MaxCustomerArea      = MaxView(PanelCustomerArea)
	MaxCustomerWarehouse = MaxView(PanelCustomerWarehouse)
	MaxCustomerTrend     = MaxView(PanelCustomerTrend)
	MaxCustomerCoverage  = MaxView(PanelCustomerCoverage)
	MaxCustomerCategory  = MaxView(PanelCustomerCategory)
	MaxTopCustomerOrders = MaxView(PanelTopCustomerOrders)
	MaxItemCompany       = MaxView(PanelItemCompany)
	MaxItemRegion        = MaxView(PanelItemRegion)
	MaxItemTrend         = MaxView(PanelItemTrend)
	MaxItemCategory      = MaxView(PanelItemCategory)
	MaxItemBrand         = MaxView(PanelItemBrand)
	MaxTopItemsQuantity  = MaxView(PanelTopItemsQuantity)
	MaxPOStatus          = MaxView(PanelPOStatus)
	MaxPOSupplier        = MaxView(PanelPOSupplier)
	MaxPOTrend           = MaxView(PanelPOTrend)
	MaxPOWarehouse       = MaxView(PanelPOWarehouse)
	MaxComparisonCurrent = MaxView(PanelComparisonCurrent)
	MaxComparisonPrior   = MaxView(PanelComparisonPrior)
	MaxComparisonGrowth  = MaxView(PanelComparisonGrowth)
	MaxComparisonTrend   = MaxView(PanelComparisonTrend)
	MaxLoadSummary       = MaxView(PanelLoadSummary)
	MaxUnloadSummary     = MaxView(PanelUnloadSummary)
	MaxLoadUnloadTrend   = MaxView(PanelLoadUnloadTrend)
	MaxLoadUnloadVehicle = MaxView(PanelLoadUnloadVehicle)
	MaxVisitSalesman     = MaxView(PanelVisitSalesman)
	MaxVisitStatus       = MaxView(PanelVisitStatus)
	MaxVisitTrend        = MaxView(PanelVisitTrend)
	MaxVisitCoverage     = MaxView(PanelVisitCoverage)
)

var maxViews = map[MaxView]PanelKey{
	MaxCompanySales:      PanelCompanySales,
	MaxRegionSales:       PanelRegionSales,
	MaxAreaSales:         PanelAreaSales,
	MaxWarehouseSales:    PanelWarehouseSales,
	MaxSalesTrend:        PanelSalesTrend,
	MaxSalesCoverage:     PanelSalesCoverage,
	MaxChannelSales:      PanelChannelSales,
	MaxTopItems:          PanelTopItems,
	MaxBottomItems:       PanelBottomItems,
	MaxTopCustomers:      PanelTopCustomers,
	MaxCustomerCompany:   PanelCustomerCompany,
	MaxCustomerRegion:    PanelCustomerRegion,
	MaxCustomerArea:      PanelCustomerArea,
	MaxCustomerWarehouse: PanelCustomerWarehouse,
	MaxCustomerTrend:     PanelCustomerTrend,
	MaxCustomerCoverage:  PanelCustomerCoverage,
	MaxCustomerCategory:  PanelCustomerCategory,
	MaxTopCustomerOrders: PanelTopCustomerOrders,
	MaxItemCompany:       PanelItemCompany,
	MaxItemRegion:        PanelItemRegion,
	MaxItemTrend:         PanelItemTrend,
	MaxItemCategory:      PanelItemCategory,
	MaxItemBrand:         PanelItemBrand,
	MaxTopItemsQuantity:  PanelTopItemsQuantity,
	MaxPOStatus:          PanelPOStatus,
	MaxPOSupplier:        PanelPOSupplier,
	MaxPOTrend:           PanelPOTrend,
	MaxPOWarehouse:       PanelPOWarehouse,
	MaxComparisonCurrent: PanelComparisonCurrent,
	MaxComparisonPrior:   PanelComparisonPrior,
	MaxComparisonGrowth:  PanelComparisonGrowth,
	MaxComparisonTrend:   PanelComparisonTrend,
	MaxLoadSummary:       PanelLoadSummary,
	MaxUnloadSummary:     PanelUnloadSummary,
	MaxLoadUnloadTrend:   PanelLoadUnloadTrend,
	MaxLoadUnloadVehicle: PanelLoadUnloadVehicle,
	MaxVisitSalesman:     PanelVisitSalesman,
	MaxVisitStatus:       PanelVisitStatus,
	MaxVisitTrend:        PanelVisitTrend,
	MaxVisitCoverage:     PanelVisitCoverage,
}

func MaxViews() []MaxView {
	out := make([]MaxView, 0, len(maxViews))
	for tag := range maxViews {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func ParseMaxView(raw string) (MaxView, error) {
	needle := strings.TrimSpace(raw)
	for tag := range maxViews {
		if strings.EqualFold(string(tag), needle) {
			return tag, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMaxView, raw)
}

type RankRow struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
	Color string  `json:"color"`
}

type MaximizedView struct {
	Tag    MaxView                   `json:"tag"`
	Title  string                    `json:"title"`
	Kind   Kind                      `json:"kind"`
	Series []shaper.ChartSeriesPoint `json:"series,omitempty"`
	Trend  *shaper.TrendSeries       `json:"trend,omitempty"`
	Table  []RankRow                 `json:"table"`
	Total  float64                   `json:"total"`
	Empty  bool                      `json:"empty"`
}

// BuildMaxView shapes the unsliced data behind tag with a rank table.
// Trend views rank categories by their total across periods.
func BuildMaxView(tag MaxView, payload shaper.Payload) (MaximizedView, error) {
	key, ok := maxViews[tag]
	if !ok {
		return MaximizedView{}, fmt.Errorf("%w: %q", ErrUnknownMaxView, tag)
	}
	panel, ok := PanelFor(key)
	if !ok {
		return MaximizedView{}, fmt.Errorf("%w: %q", ErrUnknownMaxView, tag)
	}

	pv := shapePanel(panel, payload, true)
	mv := MaximizedView{
		Tag:    tag,
		Title:  panel.Title,
		Kind:   panel.Kind,
		Series: pv.Series,
		Trend:  pv.Trend,
		Total:  pv.Total,
		Empty:  pv.Empty,
	}

	points := pv.Series
	if pv.Trend != nil {
		points = categoryTotals(*pv.Trend)
	}
	mv.Table = rank(points)
	return mv, nil
}

func categoryTotals(trend shaper.TrendSeries) []shaper.ChartSeriesPoint {
	out := make([]shaper.ChartSeriesPoint, len(trend.Names))
	for i, name := range trend.Names {
		out[i] = shaper.ChartSeriesPoint{Name: name}
		if i < len(trend.Colors) {
			out[i].Color = trend.Colors[i]
		}
		for _, row := range trend.Rows {
			out[i].Value += row.Values[name]
		}
	}
	return out
}

func rank(points []shaper.ChartSeriesPoint) []RankRow {
	sorted := append([]shaper.ChartSeriesPoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	total := shaper.Total(sorted)
	rows := make([]RankRow, len(sorted))
	for i, p := range sorted {
		share := 0.0
		if total > 0 {
			share = p.Value / total * 100
		}
		rows[i] = RankRow{Rank: i + 1, Name: p.Name, Value: p.Value, Share: share, Color: p.Color}
	}
	return rows
}
