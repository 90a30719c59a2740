package settings

import (
	"regexp"
	"strings"
)

// MetadataExtractor splits document text into front-matter metadata and the
// remaining body lines.
type MetadataExtractor interface {
	Extract(text string) (Metadata, []string)
}

var (
	metaRe     = regexp.MustCompile(`^[ ]{0,3}([A-Za-z0-9_-]+):\s*(.*)`)
	metaMoreRe = regexp.MustCompile(`^(?:[ ]{4}|\t)\s*(.*)`)
	beginRe    = regexp.MustCompile(`^-{3}(\s.*)?$`)
	endRe      = regexp.MustCompile(`^(-{3}|\.{3})(\s.*)?$`)
)

// MetaPreprocessor reads "key: value" front-matter in the style of the Markdown
// meta-data extension. Indented lines continue the previous key, so every value
// is a []string with one element per line.
type MetaPreprocessor struct{}

// Extract implements MetadataExtractor.
func (MetaPreprocessor) Extract(text string) (Metadata, []string) {
	lines := splitLines(text)
	if len(lines) > 0 && beginRe.MatchString(lines[0]) {
		lines = lines[1:]
	}

	meta := make(Metadata)
	var key string
	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" || endRe.MatchString(line) {
			// The terminator is consumed with the header
			i++
			break
		}
		if m := metaRe.FindStringSubmatch(line); m != nil {
			key = strings.ToLower(strings.TrimSpace(m[1]))
			prev, _ := meta[key].([]string)
			meta[key] = append(prev, strings.TrimSpace(m[2]))
			continue
		}
		if m := metaMoreRe.FindStringSubmatch(line); m != nil && key != "" {
			prev, _ := meta[key].([]string)
			meta[key] = append(prev, strings.TrimSpace(m[1]))
			continue
		}
		// Not metadata: the body starts here
		break
	}

	body := make([]string, len(lines)-i)
	copy(body, lines[i:])
	return meta, body
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
