// Package shaper turns loosely shaped analytics payloads into chart-ready values.
// Nothing in this package returns an error: absent or malformed data reads as empty or zero.
package shaper

import (
	"strings"

	"github.com/spf13/cast"
)

// Payload is a decoded analytics API response.
type Payload map[string]any

// Lookup walks a dotted path, e.g. "charts.company_sales".
func (p Payload) Lookup(path string) (any, bool) {
	if p == nil || path == "" {
		return nil, false
	}
	var current any = map[string]any(p)
	for _, part := range strings.Split(path, ".") {
		obj, ok := asObject(current)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// List returns the first non-empty list found among paths.
func (p Payload) List(paths ...string) []map[string]any {
	for _, path := range paths {
		raw, ok := p.Lookup(path)
		if !ok {
			continue
		}
		if items := toRecords(raw); len(items) > 0 {
			return items
		}
	}
	return []map[string]any{}
}

func (p Payload) Object(path string) map[string]any {
	raw, ok := p.Lookup(path)
	if !ok {
		return map[string]any{}
	}
	obj, ok := asObject(raw)
	if !ok {
		return map[string]any{}
	}
	return obj
}

func (p Payload) String(path, fallback string) string {
	raw, ok := p.Lookup(path)
	if !ok {
		return fallback
	}
	s := strings.TrimSpace(cast.ToString(raw))
	if s == "" {
		return fallback
	}
	return s
}

func (p Payload) Number(path string) float64 {
	raw, ok := p.Lookup(path)
	if !ok {
		return 0
	}
	return Number(raw)
}

// Empty reports whether the payload carries nothing to draw.
func (p Payload) Empty() bool {
	return len(p) == 0
}

// Unwrap returns the inner object when the payload is enveloped as {"data": {...}}.
func (p Payload) Unwrap() Payload {
	if len(p) != 1 {
		return p
	}
	if inner, ok := asObject(p["data"]); ok {
		return Payload(inner)
	}
	return p
}

// KPIs reads the kpis block (or its singular alias) as numbers.
func KPIs(p Payload) map[string]float64 {
	block := p.Object("kpis")
	if len(block) == 0 {
		block = p.Object("kpi")
	}
	out := make(map[string]float64, len(block))
	for k, v := range block {
		out[k] = Number(v)
	}
	return out
}

func asObject(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, true
	case Payload:
		return typed, true
	default:
		return nil, false
	}
}

func toRecords(v any) []map[string]any {
	switch typed := v.(type) {
	case []map[string]any:
		return typed
	case []any:
		out := make([]map[string]any, 0, len(typed))
		for _, item := range typed {
			if obj, ok := asObject(item); ok {
				out = append(out, obj)
			}
		}
		return out
	default:
		return nil
	}
}
