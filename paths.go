package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// NormalisePaths returns a copy with every path option made absolute relative
// to directory. An empty directory means the working directory.
//
// An untouched favicon resolves inside the asset directory, and an untouched
// md_base_dir becomes directory itself. Applying the same directory again is a
// no-op.
func (s ProjectSettings) NormalisePaths(directory string) (ProjectSettings, error) {
	if directory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ProjectSettings{}, fmt.Errorf("failed to determine working directory: %w", err)
		}
		directory = wd
	}
	directory, err := filepath.Abs(expandVars(directory))
	if err != nil {
		return ProjectSettings{}, fmt.Errorf("failed to make '%s' absolute: %w", directory, err)
	}

	out := s.Clone()
	if out.OriginOf("favicon") == OriginUnset {
		if out.assetDir != "" {
			out.Favicon = filepath.Join(out.assetDir, FaviconPath)
		}
		out.resolved["favicon"] = true
	}
	if out.OriginOf("md_base_dir") == OriginUnset {
		out.MdBaseDir = directory
		out.resolved["md_base_dir"] = true
	}

	current, err := toMap(out)
	if err != nil {
		return ProjectSettings{}, err
	}

	updates := make(map[string]any)
	for _, field := range ProjectSchema.Fields() {
		switch field.Kind {
		case KindPath:
			if p, _ := current[field.Name].(string); p != "" {
				updates[field.Name] = normalisePath(directory, p)
			}
		case KindPaths:
			list, _ := current[field.Name].([]string)
			if list == nil {
				continue
			}
			resolved := make([]string, len(list))
			for i, p := range list {
				resolved[i] = normalisePath(directory, p)
			}
			updates[field.Name] = resolved
		}
	}

	if err := decodeInto(updates, &out); err != nil {
		return ProjectSettings{}, fmt.Errorf("failed to normalise paths: %w", err)
	}
	return out, nil
}
