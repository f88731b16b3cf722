package dashboard

import (
	"dashboard-service/internal/shaper"
)

type State string

const (
	StateReady State = "ready"
	StateEmpty State = "empty"
	StateError State = "error"
)

type PanelView struct {
	Key     PanelKey                  `json:"key"`
	Title   string                    `json:"title"`
	Kind    Kind                      `json:"kind"`
	MaxView MaxView                   `json:"max_view,omitempty"`
	Series  []shaper.ChartSeriesPoint `json:"series,omitempty"`
	Trend   *shaper.TrendSeries       `json:"trend,omitempty"`
	Table   []map[string]any          `json:"table,omitempty"`
	Total   float64                   `json:"total"`
	Empty   bool                      `json:"empty"`
}

type View struct {
	State      State              `json:"state"`
	Message    string             `json:"message,omitempty"`
	ReportType ReportType         `json:"report_type"`
	DataLevel  DataLevel          `json:"data_level,omitempty"`
	Layout     string             `json:"layout,omitempty"`
	KPIs       map[string]float64 `json:"kpis,omitempty"`
	Rows       [][]PanelView      `json:"rows,omitempty"`
}

// Render short-circuits on fetch failure or an empty payload, otherwise shapes every
// panel of the selected layout.
func Render(report ReportType, payload shaper.Payload, fetchErr error) View {
	if fetchErr != nil {
		return View{State: StateError, ReportType: report, Message: "failed to load dashboard data"}
	}
	if payload.Empty() {
		return View{State: StateEmpty, ReportType: report, Message: "no dashboard data"}
	}

	level := LevelOf(payload)
	layout := SelectLayout(level, report)

	view := View{
		State:      StateReady,
		ReportType: report,
		DataLevel:  level,
		Layout:     layout.ID,
		KPIs:       shaper.KPIs(payload),
		Rows:       make([][]PanelView, 0, len(layout.Rows)),
	}
	for _, row := range layout.Rows {
		panelsInRow := make([]PanelView, 0, len(row))
		for _, key := range row {
			panel, ok := PanelFor(key)
			if !ok {
				continue
			}
			panelsInRow = append(panelsInRow, shapePanel(panel, payload, false))
		}
		view.Rows = append(view.Rows, panelsInRow)
	}
	return view
}

func shapePanel(panel Panel, payload shaper.Payload, full bool) PanelView {
	pv := PanelView{Key: panel.Key, Title: panel.Title, Kind: panel.Kind}
	if _, ok := maxViews[MaxView(panel.Key)]; ok {
		pv.MaxView = MaxView(panel.Key)
	}

	sources := panel.Sources
	if full {
		sources = panel.FullSources()
	}
	items := payload.List(sources...)

	switch {
	case panel.Kind == KindTable:
		pv.Table = items
		pv.Empty = len(items) == 0
	case panel.IsTrend():
		trend := shaper.Trend(items, shaper.TrendOptions{
			PeriodKeys: panel.trend.periodKeys,
			NameKeys:   panel.NameKeys,
			ValueKeys:  panel.ValueKeys,
			Monthly:    panel.trend.monthly,
			Palette:    panel.Palette,
		})
		pv.Trend = &trend
		for _, t := range shaper.Flatten(trend) {
			pv.Total += t.Value
		}
		pv.Empty = trend.Empty()
	default:
		limit := panel.Limit
		if full {
			limit = 0
		}
		pv.Series = shaper.Series(items, shaper.SeriesOptions{
			NameKeys:  panel.NameKeys,
			ValueKeys: panel.ValueKeys,
			Palette:   panel.Palette,
			Limit:     limit,
		})
		pv.Total = shaper.Total(pv.Series)
		pv.Empty = len(pv.Series) == 0
	}
	return pv
}
