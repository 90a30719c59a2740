// FILE: lixenwraith/settings/include_test.go
package settings

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIncludeDirective(t *testing.T) {
	assert.True(t, IsIncludeDirective("{!header.md!}"))
	assert.True(t, IsIncludeDirective("{! header.md !}"))
	assert.True(t, IsIncludeDirective("{!notes.txt!lines=1 3-5}"))
	assert.True(t, IsIncludeDirective("{!header.md!} trailing text"))
	assert.False(t, IsIncludeDirective("text before {!header.md!}"))
	assert.False(t, IsIncludeDirective("plain value"))
}

func TestFileIncluder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.md"), "single line\n")
	writeFile(t, filepath.Join(dir, "two.md"), "first\nsecond\n")
	writeFile(t, filepath.Join(dir, "numbers.txt"), "1\n2\n3\n4\n5\n")
	writeFile(t, filepath.Join(dir, "outer.md"), "outer start\n{!sub/inner.md!}\nouter end")
	writeFile(t, filepath.Join(dir, "sub", "inner.md"), "inner {!leaf.md!}")
	writeFile(t, filepath.Join(dir, "sub", "leaf.md"), "leaf")
	writeFile(t, filepath.Join(dir, "loop.md"), "{!loop.md!}")

	includer := FileIncluder{Logger: zerolog.Nop()}

	tests := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{"WholeLine", []string{"{!one.md!}"}, []string{"single line"}},
		{"Inline", []string{"before {!one.md!} after"}, []string{"before single line after"}},
		{"MultiLineInline", []string{"before {!two.md!} after"}, []string{"before first", "second after"}},
		{"TwoDirectivesOnOneLine", []string{"{!one.md!} and {!one.md!}"}, []string{"single line and single line"}},
		{"LineSelection", []string{"{!numbers.txt!lines=2 4-5}"}, []string{"2", "4", "5"}},
		{"SelectionOutOfRange", []string{"{!numbers.txt!lines=4-9}"}, []string{"4", "5"}},
		{"Nested", []string{"{!outer.md!}"}, []string{"outer start", "inner leaf", "outer end"}},
		{"NoDirective", []string{"plain", "lines"}, []string{"plain", "lines"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := includer.Resolve(dir, tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("AbsolutePath", func(t *testing.T) {
		out, err := includer.Resolve("/somewhere/else", []string{"{!" + filepath.Join(dir, "one.md") + "!}"})
		require.NoError(t, err)
		assert.Equal(t, []string{"single line"}, out)
	})

	t.Run("MissingFileWarns", func(t *testing.T) {
		var logs bytes.Buffer
		withLog := FileIncluder{Logger: zerolog.New(&logs)}

		out, err := withLog.Resolve(dir, []string{"a {!missing.md!} b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a  b"}, out)
		assert.Contains(t, logs.String(), "could not find file")
		assert.Contains(t, logs.String(), "missing.md")
	})

	t.Run("DepthLimit", func(t *testing.T) {
		_, err := includer.Resolve(dir, []string{"{!loop.md!}"})
		assert.ErrorIs(t, err, ErrIncludeDepthExceeded)
	})
}

func TestSelectLines(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	assert.Equal(t, lines, selectLines(lines, ""))
	assert.Equal(t, []string{"b", "c"}, selectLines(lines, "2-3"))
	assert.Equal(t, []string{"a", "d"}, selectLines(lines, "1 4"))
	assert.Equal(t, []string{"a"}, selectLines(lines, "x 1"))
	assert.Empty(t, selectLines(lines, "9"))
}
