// FILE: lixenwraith/settings/loader.go
package settings

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// BuildConfigFile is the fpm manifest searched for settings.
const BuildConfigFile = "fpm.toml"

// buildConfigTable is the nested table holding the settings.
var buildConfigTable = []string{"extra", "ford"}

// LoadTOMLSettings loads settings from the [extra.ford] table of fpm.toml in
// directory. The boolean is false, with no error, when the file or either table
// level is missing.
func LoadTOMLSettings(directory string, opts Options) (ProjectSettings, bool, error) {
	filename := filepath.Join(directory, BuildConfigFile)

	info, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ProjectSettings{}, false, nil
		}
		return ProjectSettings{}, false, fmt.Errorf("failed to stat build config '%s': %w", filename, err)
	}
	if !info.Mode().IsRegular() {
		return ProjectSettings{}, false, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return ProjectSettings{}, false, fmt.Errorf("failed to read build config '%s': %w", filename, err)
	}

	document := make(map[string]any)
	if err := toml.Unmarshal(data, &document); err != nil {
		return ProjectSettings{}, false, fmt.Errorf("failed to parse TOML build config '%s': %w", filename, err)
	}

	table, ok := navigateToTable(document, buildConfigTable)
	if !ok {
		return ProjectSettings{}, false, nil
	}

	s, err := newProject(ProjectSchema.known(table, opts.Logger), opts, SourceTOML)
	if err != nil {
		return ProjectSettings{}, false, fmt.Errorf("invalid settings in '%s': %w", filename, err)
	}
	return s, true, nil
}

// navigateToTable walks nested tables along segments.
func navigateToTable(document map[string]any, segments []string) (map[string]any, bool) {
	current := document
	for _, segment := range segments {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// LoadMarkdownSettings loads settings from the front-matter of projectText and
// returns them with the remaining body. Values that start with a {!file!}
// include directive are replaced by the included text, relative to md_base_dir
// when given and to directory otherwise.
func LoadMarkdownSettings(directory, projectText string, opts Options) (ProjectSettings, string, error) {
	meta, body := opts.extractor().Extract(projectText)

	values, err := ProjectSchema.Coerce(meta, opts.Logger)
	if err != nil {
		return ProjectSettings{}, "", err
	}

	includeBase := directory
	if base, _ := values["md_base_dir"].(string); base != "" {
		includeBase = normalisePath(directory, base)
	}

	for _, option := range slices.Sorted(maps.Keys(values)) {
		value, ok := values[option].(string)
		if !ok || !IsIncludeDirective(value) {
			continue
		}
		opts.Logger.Warn().
			Str("option", option).
			Str("value", value).
			Msg("including other files in project file metadata is deprecated and will stop working in a future release")

		resolved, err := opts.includer().Resolve(includeBase, splitLines(value))
		if err != nil {
			return ProjectSettings{}, "", fmt.Errorf("failed to include files for option '%s': %w", option, err)
		}
		values[option] = strings.Join(resolved, "\n")
	}

	s, err := newProject(values, opts, SourceMarkdown)
	if err != nil {
		return ProjectSettings{}, "", err
	}
	return s, strings.Join(body, "\n"), nil
}
