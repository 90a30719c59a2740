// File: lixenwraith/settings/include.go
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// MaxIncludeDepth bounds nested include directives.
const MaxIncludeDepth = 16

var (
	// includeDirectiveRe matches an include directive at the start of a value.
	includeDirectiveRe = regexp.MustCompile(`^\{!\s*(.+?)\s*!((\blines\b)=([0-9 -]+))?\}`)
	// includeRe matches include directives anywhere in a line.
	includeRe = regexp.MustCompile(`\{!\s*(.+?)\s*!((\blines\b)=([0-9 -]+))?\}`)
)

// IsIncludeDirective reports whether a metadata value starts with the
// deprecated {!file!} include syntax.
func IsIncludeDirective(value string) bool {
	return includeDirectiveRe.MatchString(value)
}

// IncludeResolver replaces include directives in lines with the contents of the
// files they name, relative to baseDir.
type IncludeResolver interface {
	Resolve(baseDir string, lines []string) ([]string, error)
}

// FileIncluder resolves include directives from the local filesystem.
// Unreadable files are reported and the directive removed.
type FileIncluder struct {
	Logger zerolog.Logger
}

// Resolve implements IncludeResolver.
func (fi FileIncluder) Resolve(baseDir string, lines []string) ([]string, error) {
	return fi.resolve(baseDir, lines, 0)
}

func (fi FileIncluder) resolve(baseDir string, lines []string, depth int) ([]string, error) {
	if depth > MaxIncludeDepth {
		return nil, fmt.Errorf("%w: more than %d levels below '%s'", ErrIncludeDepthExceeded, MaxIncludeDepth, baseDir)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		loc := includeRe.FindStringSubmatchIndex(line)
		if loc == nil {
			out = append(out, line)
			continue
		}

		name := line[loc[2]:loc[3]]
		var selection string
		if loc[8] >= 0 {
			selection = line[loc[8]:loc[9]]
		}
		before, after := line[:loc[0]], line[loc[1]:]

		filename := name
		if !filepath.IsAbs(filename) {
			filename = filepath.Join(baseDir, filename)
		}
		data, err := os.ReadFile(filename)
		if err != nil {
			fi.Logger.Warn().
				Str("file", filename).
				Err(err).
				Msg("could not find file, ignoring include statement")
			rest, err := fi.resolve(baseDir, []string{before + after}, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, rest...)
			continue
		}

		included := selectLines(splitLines(string(data)), selection)
		included, err = fi.resolve(filepath.Dir(filename), included, depth+1)
		if err != nil {
			return nil, err
		}
		if len(included) == 0 {
			included = []string{""}
		}
		included[0] = before + included[0]
		last := len(included) - 1
		tail, err := fi.resolve(baseDir, []string{included[last] + after}, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, included[:last]...)
		out = append(out, tail...)
	}
	return out, nil
}

// selectLines applies a "1 3-5" style selection of 1-based inclusive line
// numbers. An empty selection keeps every line.
func selectLines(lines []string, selection string) []string {
	if strings.TrimSpace(selection) == "" {
		return lines
	}
	var out []string
	for _, part := range strings.Fields(selection) {
		first, last, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(first)
		if err != nil {
			continue
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(last); err != nil {
				continue
			}
		}
		start = max(start, 1)
		end = min(end, len(lines))
		for n := start; n <= end; n++ {
			out = append(out, lines[n-1])
		}
	}
	return out
}
