// FILE: lixenwraith/settings/builder.go
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ValidatorFunc validates fully loaded and normalised project settings.
type ValidatorFunc func(s ProjectSettings) error

// Builder provides a fluent interface for loading project settings
type Builder struct {
	opts        Options
	dir         string
	text        string
	overrides   map[string]any
	noNormalise bool
	err         error
	validators  []ValidatorFunc
}

// NewBuilder creates a new settings builder using DefaultOptions
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		validators: []ValidatorFunc{validateSourceDirs},
	}
}

// WithOptions replaces the host defaults and collaborators
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithLogger sets the logger receiving warnings
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithDirectory sets the directory holding fpm.toml, also used as the base for
// relative paths and includes
func (b *Builder) WithDirectory(dir string) *Builder {
	b.dir = dir
	return b
}

// WithProjectText sets the project file contents
func (b *Builder) WithProjectText(text string) *Builder {
	b.text = text
	return b
}

// WithProjectFile reads the project file. Its directory becomes the settings
// directory unless WithDirectory was called.
func (b *Builder) WithProjectFile(path string) *Builder {
	data, err := os.ReadFile(path)
	if err != nil {
		b.err = fmt.Errorf("failed to read project file '%s': %w", path, err)
		return b
	}
	b.text = string(data)
	if b.dir == "" {
		b.dir = filepath.Dir(path)
	}
	return b
}

// WithOverrides sets already-typed values that take precedence over both files
func (b *Builder) WithOverrides(overrides map[string]any) *Builder {
	b.overrides = overrides
	return b
}

// WithoutPathNormalisation leaves relative paths as loaded
func (b *Builder) WithoutPathNormalisation() *Builder {
	b.noNormalise = true
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build loads the settings and returns them with the project body text.
// fpm.toml settings, when present, replace the front-matter and the text is
// returned unchanged.
func (b *Builder) Build() (ProjectSettings, string, error) {
	if b.err != nil {
		return ProjectSettings{}, "", b.err
	}

	dir := b.dir
	if dir == "" {
		dir = "."
	}

	s, found, err := LoadTOMLSettings(dir, b.opts)
	if err != nil {
		return ProjectSettings{}, "", err
	}
	body := b.text
	if found {
		b.opts.Logger.Debug().Str("directory", dir).Msg("using settings from " + BuildConfigFile)
	} else {
		s, body, err = LoadMarkdownSettings(dir, b.text, b.opts)
		if err != nil {
			return ProjectSettings{}, "", err
		}
	}

	if len(b.overrides) > 0 {
		if s, err = s.ApplyOverrides(b.overrides); err != nil {
			return ProjectSettings{}, "", err
		}
	}

	if !s.Preprocess {
		s.FppExtensions = []string{}
	}

	if !b.noNormalise {
		if s, err = s.NormalisePaths(dir); err != nil {
			return ProjectSettings{}, "", err
		}
	}

	for _, validator := range b.validators {
		if err := validator(s); err != nil {
			return ProjectSettings{}, "", fmt.Errorf("settings validation failed: %w", err)
		}
	}

	return s, body, nil
}

// validateSourceDirs rejects a src_dir equal to or inside output_dir.
func validateSourceDirs(s ProjectSettings) error {
	output := filepath.Clean(s.OutputDir)
	for _, src := range s.SrcDir {
		if isWithin(output, filepath.Clean(src)) {
			return fmt.Errorf("%w: src_dir '%s' is within output_dir '%s'", ErrSourceInsideOutput, src, s.OutputDir)
		}
	}
	return nil
}
