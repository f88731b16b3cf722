package shaper

// ChartSeriesPoint is one slice, bar or column of a chart.
type ChartSeriesPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type SeriesOptions struct {
	NameKeys  []string
	ValueKeys []string
	Palette   Palette
	// Limit keeps the first N items in source order; zero keeps all.
	Limit int
}

// Series zips raw records with a cyclic palette. Colors follow position, not identity.
func Series(items []map[string]any, opts SeriesOptions) []ChartSeriesPoint {
	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	nameKeys := append(append([]string{}, opts.NameKeys...), "name", "label")
	valueKeys := append(append([]string{}, opts.ValueKeys...), "value")

	out := make([]ChartSeriesPoint, 0, len(items))
	for i, item := range items {
		color := firstString(item, "color")
		if color == "" {
			color = opts.Palette.At(i)
		}
		out = append(out, ChartSeriesPoint{
			Name:  firstString(item, nameKeys...),
			Value: firstNumber(item, valueKeys...),
			Color: color,
		})
	}
	return out
}

func Total(points []ChartSeriesPoint) float64 {
	var total float64
	for _, p := range points {
		total += p.Value
	}
	return total
}
