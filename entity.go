package settings

import (
	"slices"

	"github.com/rs/zerolog"
)

// EntitySettings holds the settings local to one documented entity, such as a
// module, procedure or derived type.
type EntitySettings struct {
	Author         string   `toml:"author"`
	Category       string   `toml:"category"`
	CopySubdir     []string `toml:"copy_subdir"`
	Date           string   `toml:"date"`
	Deprecated     bool     `toml:"deprecated"`
	Display        []string `toml:"display"`
	Graph          bool     `toml:"graph"`
	GraphMaxdepth  int      `toml:"graph_maxdepth" validate:"gte=0"`
	GraphMaxnodes  int      `toml:"graph_maxnodes" validate:"gte=0"`
	License        string   `toml:"license"`
	NumLines       *int     `toml:"num_lines" validate:"omitempty,gte=0"`
	OrderedSubpage []string `toml:"ordered_subpage"`
	ProcInternals  bool     `toml:"proc_internals"`
	Since          string   `toml:"since"`
	Source         bool     `toml:"source"`
	Summary        string   `toml:"summary"`
	Title          string   `toml:"title"`
	Version        string   `toml:"version"`

	log zerolog.Logger
}

// DefaultEntitySettings returns entity defaults. The inherited options start at
// the project defaults.
func DefaultEntitySettings() EntitySettings {
	return EntitySettings{
		CopySubdir:     []string{},
		Display:        []string{},
		GraphMaxdepth:  10000,
		GraphMaxnodes:  1000000000,
		OrderedSubpage: []string{},
	}
}

// FromProjectSettings seeds entity settings with graph, graph_maxdepth,
// graph_maxnodes, proc_internals and source from the project. Everything else
// takes entity defaults.
func FromProjectSettings(project ProjectSettings) EntitySettings {
	e := DefaultEntitySettings()
	e.Graph = project.Graph
	e.GraphMaxdepth = project.GraphMaxdepth
	e.GraphMaxnodes = project.GraphMaxnodes
	e.ProcInternals = project.ProcInternals
	e.Source = project.Source
	e.log = project.log
	return e
}

// EntitySettingsFromMetadata builds entity settings from entity metadata alone.
func EntitySettingsFromMetadata(meta Metadata, log zerolog.Logger) (EntitySettings, error) {
	e := DefaultEntitySettings()
	e.log = log
	return e.Update(meta)
}

// Update returns a copy with the options present in meta converted and laid
// over the current values. Options absent from meta keep their values.
func (e EntitySettings) Update(meta Metadata) (EntitySettings, error) {
	values, err := EntitySchema.Coerce(meta, e.log)
	if err != nil {
		return EntitySettings{}, err
	}

	out := e.Clone()
	if err := decodeInto(values, &out); err != nil {
		return EntitySettings{}, err
	}
	if err := checkConstraints(&out); err != nil {
		return EntitySettings{}, err
	}
	return out, nil
}

// Clone returns a deep copy of the settings.
func (e EntitySettings) Clone() EntitySettings {
	out := e
	out.CopySubdir = slices.Clone(e.CopySubdir)
	out.Display = slices.Clone(e.Display)
	out.OrderedSubpage = slices.Clone(e.OrderedSubpage)
	if e.NumLines != nil {
		n := *e.NumLines
		out.NumLines = &n
	}
	return out
}
