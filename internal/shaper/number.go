package shaper

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Number coerces v to a non-negative finite float. Anything unusable is 0.
func Number(v any) float64 {
	if v == nil {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		raw, ok := item[key]
		if !ok || raw == nil {
			continue
		}
		if s := strings.TrimSpace(cast.ToString(raw)); s != "" {
			return s
		}
	}
	return ""
}

func firstNumber(item map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if raw, ok := item[key]; ok && raw != nil {
			return Number(raw)
		}
	}
	return 0
}
