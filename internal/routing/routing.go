// Package routing normalizes lower-case URL segments to the camelCase form the router registers.
package routing

import (
	"net/http"
	"strings"
)

// DefaultRules maps lower-case path segments to their canonical spelling.
var DefaultRules = map[string]string{
	"poorder":        "poOrder",
	"advancepayment": "advancePayment",
}

// RewritePaths rewrites matching path segments before next sees the request.
// Matching ignores case; unmatched segments pass through untouched.
func RewritePaths(next http.Handler, rules map[string]string) http.Handler {
	lookup := make(map[string]string, len(rules))
	for from, to := range rules {
		lookup[strings.ToLower(from)] = to
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rewritten, ok := Rewrite(r.URL.Path, lookup); ok {
			r.URL.Path = rewritten
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}

// Rewrite returns path with every segment found in rules replaced. The bool reports whether anything changed.
func Rewrite(path string, rules map[string]string) (string, bool) {
	segments := strings.Split(path, "/")
	changed := false
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		to, ok := rules[strings.ToLower(seg)]
		if !ok || to == seg {
			continue
		}
		segments[i] = to
		changed = true
	}
	if !changed {
		return path, false
	}
	return strings.Join(segments, "/"), true
}
