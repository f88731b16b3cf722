package model

import (
	"time"
)

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// DashboardFilter is forwarded to the analytics API as-is apart from range ordering.
type DashboardFilter struct {
	Range DateRange
	Level string
}

func (f DashboardFilter) Normalize() DashboardFilter {
	if !f.Range.From.IsZero() && !f.Range.To.IsZero() && f.Range.To.Before(f.Range.From) {
		f.Range.From, f.Range.To = f.Range.To, f.Range.From
	}
	return f
}

func (f DashboardFilter) KeyParts() []string {
	parts := []string{f.Level}
	parts = append(parts, formatBound(f.Range.From), formatBound(f.Range.To))
	return parts
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
