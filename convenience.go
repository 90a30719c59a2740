// File: lixenwraith/settings/convenience.go
package settings

import (
	"fmt"
	"strings"
)

// Quick loads the project file at path with default options and a quiet logger.
func Quick(path string) (ProjectSettings, string, error) {
	return NewBuilder().WithProjectFile(path).Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(path string) (ProjectSettings, string) {
	s, body, err := Quick(path)
	if err != nil {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return s, body
}

// Debug returns a formatted listing of every option with its value, source and
// origin, in declaration order.
func (s ProjectSettings) Debug() string {
	var b strings.Builder
	b.WriteString("Settings Debug Info:\n")

	values, err := toMap(s)
	if err != nil {
		fmt.Fprintf(&b, "  <unavailable: %v>\n", err)
		return b.String()
	}

	names := make([]string, 0, len(values))
	for _, f := range ProjectSchema.Fields() {
		names = append(names, f.Name)
	}
	names = append(names, "relative")

	for _, name := range names {
		src := string(s.SourceOf(name))
		if name == "relative" {
			src = "derived"
		}
		fmt.Fprintf(&b, "  %s:\n", name)
		fmt.Fprintf(&b, "    Value: %v\n", values[name])
		fmt.Fprintf(&b, "    Source: %s\n", src)
		fmt.Fprintf(&b, "    Origin: %s\n", s.OriginOf(name))
	}
	return b.String()
}
