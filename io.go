// File: lixenwraith/settings/io.go
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Dump.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format '%s', expected toml, yaml or json", name)
}

// Dump writes every option, derived ones included, to w.
func (s ProjectSettings) Dump(w io.Writer, format Format) error {
	data, err := toMap(s)
	if err != nil {
		return err
	}
	return encode(w, format, data)
}

// Save writes the settings to path as an fpm.toml style document, nested under
// the [extra.ford] table. The derived "relative" option is left out so the
// file loads back without warnings. The file is replaced atomically.
func (s ProjectSettings) Save(path string) error {
	data, err := toMap(s)
	if err != nil {
		return err
	}
	delete(data, "relative")

	document := make(map[string]any)
	setNestedValue(document, buildConfigTable, data)

	var buf bytes.Buffer
	if err := encode(&buf, FormatTOML, document); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

func encode(w io.Writer, format Format, data map[string]any) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("failed to marshal settings to TOML: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal settings to YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal settings to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format '%s'", format)
	}
	return nil
}

// setNestedValue stores value under the table path, creating tables as needed.
func setNestedValue(document map[string]any, segments []string, value any) {
	current := document
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file to '%s': %w", path, err)
	}
	return nil
}
