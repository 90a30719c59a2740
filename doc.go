// Package settings turns the loosely typed configuration of a Fortran documentation
// run into validated, strongly typed settings. Three sources are supported: the
// [extra.ford] table of an fpm.toml build file, the front-matter metadata of the
// project file, and already-typed command-line overrides.
//
// Features:
//   - Explicit schemas (ProjectSchema, EntitySchema) with one Kind tag per option
//   - Coercion of front-matter strings into booleans, integers, lists and maps
//   - Marker collision checks and derived fields applied on every construction
//   - Path normalisation against a base directory, with environment expansion
//   - Per-entity settings that inherit a subset of the project settings
//   - Source and origin tracking for every option
//
// Quick Start:
//
//	project, body, err := settings.NewBuilder().
//	    WithProjectFile("docs/project.md").
//	    WithOverrides(map[string]any{"quiet": true}).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entity := settings.FromProjectSettings(project)
//	entity, err = entity.Update(settings.Metadata{"summary": []string{"one", "two"}})
//
// Precedence (highest to lowest):
//  1. Command-line overrides
//  2. fpm.toml [extra.ford] table, or the project file front-matter when absent
//  3. Built-in defaults
//
// The two file sources are never merged.
//
// Settings values are not safe for concurrent mutation, but every transformation
// returns a fresh copy, so a value that is only read may be shared freely.
package settings
