// FILE: lixenwraith/settings/decode.go
package settings

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// decodeInto is the single function that writes option values into a settings
// record. Options missing from values keep the target's current value.
func decodeInto(values map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	// Weak typing stays off: only scalar-to-sequence wrapping is applied here.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    "toml",
		ZeroFields: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			wrapScalarHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// toMap flattens a settings record into option name -> value.
func toMap(source any) (map[string]any, error) {
	out := make(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "toml",
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(source); err != nil {
		return nil, fmt.Errorf("failed to flatten %T: %w", source, err)
	}
	return out, nil
}

// wrapScalarHookFunc turns a scalar into a single-element slice when the target
// is a slice.
func wrapScalarHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Slice {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Slice, reflect.Array:
			return data, nil
		}
		return []any{data}, nil
	}
}
