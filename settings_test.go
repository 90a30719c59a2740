// FILE: lixenwraith/settings/settings_test.go
package settings

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOptions returns fixed host defaults so results do not depend on the machine.
func testOptions() Options {
	return Options{
		Parallel: 4,
		Year:     "2024",
		AssetDir: "/opt/ford/assets",
		Logger:   zerolog.Nop(),
	}
}

// captureOptions returns test options whose logger writes into the returned buffer.
func captureOptions() (Options, *bytes.Buffer) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Logger = zerolog.New(&buf)
	return opts, &buf
}

func TestDefaults(t *testing.T) {
	t.Run("HostValuesInjected", func(t *testing.T) {
		s := DefaultProjectSettings(testOptions())
		assert.Equal(t, 4, s.Parallel)
		assert.Equal(t, "2024", s.Year)
		assert.Equal(t, FaviconPath, s.Favicon)
	})

	t.Run("DefaultOptionsProbeHost", func(t *testing.T) {
		opts := DefaultOptions()
		assert.Positive(t, opts.Parallel)
		assert.Len(t, opts.Year, 4)
		assert.NotNil(t, opts.extractor())
		assert.NotNil(t, opts.includer())
	})

	t.Run("AllOptionsUnset", func(t *testing.T) {
		s := DefaultProjectSettings(testOptions())
		for _, f := range ProjectSchema.Fields() {
			assert.Equal(t, OriginUnset, s.OriginOf(f.Name), f.Name)
			assert.Equal(t, SourceDefault, s.SourceOf(f.Name), f.Name)
		}
	})
}

func TestClone(t *testing.T) {
	s, err := ProjectSettingsFromMetadata(Metadata{
		"src_dir": []string{"a", "b"},
		"alias":   []string{"x = y"},
	}, testOptions())
	require.NoError(t, err)

	c := s.Clone()
	c.SrcDir[0] = "changed"
	c.Alias["x"] = "changed"
	c.sources["src_dir"] = SourceCLI

	assert.Equal(t, []string{"a", "b"}, s.SrcDir)
	assert.Equal(t, "y", s.Alias["x"])
	assert.Equal(t, SourceMarkdown, s.SourceOf("src_dir"))
}

func TestGet(t *testing.T) {
	s, err := ProjectSettingsFromMetadata(Metadata{"project": "Demo"}, testOptions())
	require.NoError(t, err)

	t.Run("DeclaredOption", func(t *testing.T) {
		val, exists := s.Get("project")
		assert.True(t, exists)
		assert.Equal(t, "Demo", val)
	})

	t.Run("DerivedOption", func(t *testing.T) {
		val, exists := s.Get("relative")
		assert.True(t, exists)
		assert.Equal(t, true, val)
	})

	t.Run("UnknownOption", func(t *testing.T) {
		_, exists := s.Get("nonexistent")
		assert.False(t, exists)
	})
}

func TestOriginTracking(t *testing.T) {
	s, err := ProjectSettingsFromMetadata(Metadata{"favicon": "favicon.png"}, testOptions())
	require.NoError(t, err)

	// An explicit value equal to the default still counts as user supplied
	assert.Equal(t, OriginUser, s.OriginOf("favicon"))
	assert.Equal(t, SourceMarkdown, s.SourceOf("favicon"))
	assert.Equal(t, OriginUnset, s.OriginOf("md_base_dir"))

	normalised, err := s.NormalisePaths("/prefix")
	require.NoError(t, err)
	assert.Equal(t, "/prefix/favicon.png", normalised.Favicon)
	assert.Equal(t, OriginDefault, normalised.OriginOf("md_base_dir"))

	assert.Equal(t, "unset", OriginUnset.String())
	assert.Equal(t, "default", OriginDefault.String())
	assert.Equal(t, "user", OriginUser.String())
	assert.Equal(t, "Origin(9)", Origin(9).String())
}
