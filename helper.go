// File: lixenwraith/settings/helper.go
package settings

import (
	"os"
	"path/filepath"
	"strings"
)

// lowerAll returns a lower-cased copy of values.
func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// union returns the elements of a followed by those of b, without duplicates.
func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// expandVars replaces $VAR and ${VAR} with environment values. Unset variables
// are left as written.
func expandVars(p string) string {
	return os.Expand(p, func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return "${" + name + "}"
	})
}

// normalisePath makes p absolute relative to base. base must be absolute.
func normalisePath(base, p string) string {
	p = expandVars(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// isWithin reports whether target is dir or lies below it.
func isWithin(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
