package settings

import (
	"fmt"

	"github.com/rs/zerolog"
)

// SourceDirect represents values passed straight to NewProjectSettings.
const SourceDirect Source = "direct"

// NewProjectSettings builds settings directly from raw option values, such as a
// parsed TOML table. Unknown options are dropped with a warning and scalars are
// wrapped for sequence options; no other conversion takes place, so a string
// "true" is rejected for a boolean option.
func NewProjectSettings(raw map[string]any, opts Options) (ProjectSettings, error) {
	return newProject(ProjectSchema.known(raw, opts.Logger), opts, SourceDirect)
}

// ProjectSettingsFromMetadata builds settings from front-matter metadata,
// converting each value to its option's kind first.
func ProjectSettingsFromMetadata(meta Metadata, opts Options) (ProjectSettings, error) {
	values, err := ProjectSchema.Coerce(meta, opts.Logger)
	if err != nil {
		return ProjectSettings{}, err
	}
	return newProject(values, opts, SourceMarkdown)
}

func newProject(values map[string]any, opts Options, src Source) (ProjectSettings, error) {
	s := DefaultProjectSettings(opts)
	if err := decodeInto(values, &s); err != nil {
		return ProjectSettings{}, err
	}
	s.markSources(values, src)
	if err := s.derive(); err != nil {
		return ProjectSettings{}, err
	}
	return s, nil
}

// ApplyOverrides returns a copy with already-typed values, typically from the
// command line, laid over the current ones. Nil values are ignored.
func (s ProjectSettings) ApplyOverrides(overrides map[string]any) (ProjectSettings, error) {
	present := make(Metadata, len(overrides))
	for name, value := range overrides {
		if value != nil {
			present[name] = value
		}
	}
	values, err := ProjectSchema.Coerce(present, s.log)
	if err != nil {
		return ProjectSettings{}, fmt.Errorf("invalid override: %w", err)
	}

	out := s.Clone()
	if err := decodeInto(values, &out); err != nil {
		return ProjectSettings{}, err
	}
	out.markSources(values, SourceCLI)
	if err := out.derive(); err != nil {
		return ProjectSettings{}, err
	}
	return out, nil
}

// known returns the recognised subset of raw, warning about every other key.
func (s *Schema) known(raw map[string]any, log zerolog.Logger) map[string]any {
	out := make(map[string]any, len(raw))
	for name, value := range raw {
		if _, ok := s.Lookup(name); !ok {
			log.Warn().
				Str("option", name).
				Str("schema", s.name).
				Msg("ignoring unknown settings key")
			continue
		}
		out[name] = value
	}
	return out
}
