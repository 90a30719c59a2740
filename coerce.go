// FILE: lixenwraith/settings/coerce.go
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Metadata maps option names to raw values. Front-matter values are a string or
// a []string; values already of the declared kind pass through.
type Metadata map[string]any

var boolTokens = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"1":     true,
	"false": false,
	"no":    false,
	"off":   false,
	"0":     false,
}

// Coerce converts raw metadata into values of each option's declared kind.
// Unknown options are dropped with a warning. The input is not modified.
func (s *Schema) Coerce(raw Metadata, log zerolog.Logger) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for name, value := range raw {
		field, ok := s.Lookup(name)
		if !ok {
			log.Warn().
				Str("option", name).
				Str("schema", s.name).
				Msg("ignoring unknown metadata key")
			continue
		}
		v, err := coerceValue(field, value)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// coerceValue converts one raw value to the kind of field.
func coerceValue(field Field, value any) (any, error) {
	if value == nil {
		if field.Optional {
			return nil, nil
		}
		return nil, &CoercionError{Option: field.Name, Value: "<nil>", Reason: "expected a value"}
	}
	if matchesKind(field.Kind, value) {
		return value, nil
	}

	switch field.Kind {
	case KindStrings, KindPaths:
		if s, ok := value.(string); ok {
			return []string{s}, nil
		}
		if list, ok := value.([]any); ok {
			return stringsFromList(field, list)
		}
	case KindList:
		if list, ok := value.([]string); ok {
			out := make([]any, len(list))
			for i, v := range list {
				out[i] = v
			}
			return out, nil
		}
		return []any{value}, nil
	case KindBool:
		return convertToBool(field.Name, value)
	case KindInt:
		return convertToInt(field.Name, value)
	case KindString, KindPath:
		if list, ok := value.([]string); ok {
			return strings.Join(list, "\n"), nil
		}
	case KindMap:
		switch v := value.(type) {
		case string:
			return parseToMap(field.Name, []string{v})
		case []string:
			return parseToMap(field.Name, v)
		}
	}

	return nil, &CoercionError{
		Option: field.Name,
		Value:  fmt.Sprintf("%v", value),
		Reason: fmt.Sprintf("cannot convert %T to %s", value, field.Kind),
	}
}

// matchesKind reports whether value already has the Go type used for kind.
func matchesKind(kind Kind, value any) bool {
	switch kind {
	case KindString, KindPath:
		_, ok := value.(string)
		return ok
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindInt:
		switch value.(type) {
		case int, int64:
			return true
		}
		return false
	case KindStrings, KindPaths:
		_, ok := value.([]string)
		return ok
	case KindMap:
		_, ok := value.(map[string]string)
		return ok
	case KindList:
		_, ok := value.([]any)
		return ok
	}
	return false
}

// tokens returns the elements of a string or []string raw value.
func tokens(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	}
	return nil, false
}

// convertToBool parses a single truthy or falsy token.
func convertToBool(name string, value any) (bool, error) {
	toks, ok := tokens(value)
	if !ok {
		return false, &CoercionError{Option: name, Value: fmt.Sprintf("%v", value), Reason: "expected 'true'/'false'"}
	}
	if len(toks) != 1 {
		return false, &CoercionError{
			Option: name,
			Value:  fmt.Sprintf("%q", toks),
			Reason: "expected a single value but got a list",
		}
	}
	b, known := boolTokens[strings.ToLower(strings.TrimSpace(toks[0]))]
	if !known {
		return false, &CoercionError{Option: name, Value: toks[0], Reason: "expected 'true'/'false'"}
	}
	return b, nil
}

// convertToInt parses the first token as a base-10 integer.
func convertToInt(name string, value any) (int, error) {
	toks, ok := tokens(value)
	if !ok || len(toks) == 0 {
		return 0, &CoercionError{Option: name, Value: fmt.Sprintf("%v", value), Reason: "expected an integer"}
	}
	i, err := strconv.Atoi(strings.TrimSpace(toks[0]))
	if err != nil {
		return 0, &CoercionError{Option: name, Value: toks[0], Reason: "expected an integer"}
	}
	return i, nil
}

// parseToMap parses "key = value" entries, splitting on the first '=' only.
func parseToMap(name string, entries []string) (map[string]string, error) {
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			return nil, &CoercionError{Option: name, Value: fmt.Sprintf("%q", entry), Reason: "expected '='"}
		}
		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return result, nil
}

// stringsFromList accepts a []any of strings for a string-sequence option.
func stringsFromList(field Field, list []any) ([]string, error) {
	out := make([]string, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, &CoercionError{
				Option: field.Name,
				Value:  fmt.Sprintf("%v", v),
				Reason: fmt.Sprintf("expected a string element, got %T", v),
			}
		}
		out[i] = s
	}
	return out, nil
}
