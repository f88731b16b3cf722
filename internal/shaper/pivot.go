package shaper

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// TrendTuple is one (period, category, value) observation.
type TrendTuple struct {
	Period string
	Name   string
	Value  float64
}

// TrendRow is one period with a value per category. It marshals flat:
// {"period": "Jan", "North": 12, "South": 0}.
type TrendRow struct {
	Period string
	Values map[string]float64
	names  []string
}

func (r TrendRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	key, _ := json.Marshal("period")
	val, err := json.Marshal(r.Period)
	if err != nil {
		return nil, err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)

	names := r.names
	if names == nil {
		names = make([]string, 0, len(r.Values))
		for name := range r.Values {
			names = append(names, name)
		}
		sort.Strings(names)
	}
	for _, name := range names {
		if name == "period" {
			continue
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Values[name])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type TrendSeries struct {
	Periods []string   `json:"periods"`
	Names   []string   `json:"names"`
	Rows    []TrendRow `json:"rows"`
	Colors  []string   `json:"colors,omitempty"`
}

func (t TrendSeries) Empty() bool {
	return len(t.Rows) == 0 || len(t.Names) == 0
}

type TrendOptions struct {
	PeriodKeys []string
	NameKeys   []string
	ValueKeys  []string
	// Monthly orders periods by the Jan..Dec table instead of first appearance.
	Monthly bool
	Palette Palette
}

// Tuples extracts (period, name, value) observations from raw records.
func Tuples(items []map[string]any, opts TrendOptions) []TrendTuple {
	periodKeys := append(append([]string{}, opts.PeriodKeys...), "period", "month")
	nameKeys := append(append([]string{}, opts.NameKeys...), "name")
	valueKeys := append(append([]string{}, opts.ValueKeys...), "value")

	out := make([]TrendTuple, 0, len(items))
	for _, item := range items {
		period := firstString(item, periodKeys...)
		if period == "" {
			continue
		}
		out = append(out, TrendTuple{
			Period: period,
			Name:   firstString(item, nameKeys...),
			Value:  firstNumber(item, valueKeys...),
		})
	}
	return out
}

// Pivot cross-joins periods and names, filling 0 for missing combinations.
// Periods and names default to first-appearance order in tuples.
func Pivot(tuples []TrendTuple, monthly bool) TrendSeries {
	periods := make([]string, 0)
	names := make([]string, 0)
	seenPeriod := map[string]bool{}
	seenName := map[string]bool{}
	cells := map[string]map[string]float64{}

	for _, t := range tuples {
		if !seenPeriod[t.Period] {
			seenPeriod[t.Period] = true
			periods = append(periods, t.Period)
		}
		if !seenName[t.Name] {
			seenName[t.Name] = true
			names = append(names, t.Name)
		}
		if cells[t.Period] == nil {
			cells[t.Period] = map[string]float64{}
		}
		cells[t.Period][t.Name] += t.Value
	}

	if monthly {
		periods = SortPeriods(periods)
	}

	rows := make([]TrendRow, 0, len(periods))
	for _, period := range periods {
		values := make(map[string]float64, len(names))
		for _, name := range names {
			values[name] = cells[period][name]
		}
		rows = append(rows, TrendRow{Period: period, Values: values, names: names})
	}

	return TrendSeries{Periods: periods, Names: names, Rows: rows}
}

// Flatten is the inverse of Pivot; every cell becomes a tuple.
func Flatten(series TrendSeries) []TrendTuple {
	out := make([]TrendTuple, 0, len(series.Rows)*len(series.Names))
	for _, row := range series.Rows {
		for _, name := range series.Names {
			out = append(out, TrendTuple{Period: row.Period, Name: name, Value: row.Values[name]})
		}
	}
	return out
}

// Trend extracts tuples and pivots them in one step, assigning colors per category.
func Trend(items []map[string]any, opts TrendOptions) TrendSeries {
	series := Pivot(Tuples(items, opts), opts.Monthly)
	series.Colors = make([]string, len(series.Names))
	for i := range series.Names {
		series.Colors[i] = opts.Palette.At(i)
	}
	return series
}

var monthOrder = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// MonthIndex maps the first three letters of a period to 0..11, or -1.
func MonthIndex(period string) int {
	p := strings.ToLower(strings.TrimSpace(period))
	if len(p) < 3 {
		return -1
	}
	prefix := p[:3]
	for i, m := range monthOrder {
		if m == prefix {
			return i
		}
	}
	return -1
}

// SortPeriods orders periods by month name only. Unrecognised periods sort first.
func SortPeriods(periods []string) []string {
	out := append([]string(nil), periods...)
	sort.SliceStable(out, func(i, j int) bool {
		return MonthIndex(out[i]) < MonthIndex(out[j])
	})
	return out
}
