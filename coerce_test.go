// FILE: lixenwraith/settings/coerce_test.go
package settings

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstElement(v any) any {
	switch list := v.(type) {
	case []string:
		if len(list) > 0 {
			return list[0]
		}
	case []any:
		if len(list) > 0 {
			return list[0]
		}
	}
	return nil
}

func TestCoerceBool(t *testing.T) {
	tokens := []struct {
		raw      string
		expected bool
	}{
		{"true", true}, {"True", true}, {"YES", true}, {"on", true}, {"1", true},
		{"false", false}, {"FALSE", false}, {"no", false}, {"Off", false}, {"0", false},
	}

	for _, f := range ProjectSchema.Fields() {
		if f.Kind != KindBool {
			continue
		}
		t.Run(f.Name, func(t *testing.T) {
			for _, tok := range tokens {
				values, err := ProjectSchema.Coerce(Metadata{f.Name: []string{tok.raw}}, zerolog.Nop())
				require.NoError(t, err, tok.raw)
				assert.Equal(t, tok.expected, values[f.Name], tok.raw)
			}

			_, err := ProjectSchema.Coerce(Metadata{f.Name: []string{"true", "false"}}, zerolog.Nop())
			assert.ErrorIs(t, err, ErrCoercion)
			assert.Contains(t, err.Error(), f.Name)

			_, err = ProjectSchema.Coerce(Metadata{f.Name: []string{"maybe"}}, zerolog.Nop())
			var coercionErr *CoercionError
			require.ErrorAs(t, err, &coercionErr)
			assert.Equal(t, f.Name, coercionErr.Option)
			assert.Equal(t, "maybe", coercionErr.Value)
		})
	}

	t.Run("BareString", func(t *testing.T) {
		values, err := ProjectSchema.Coerce(Metadata{"quiet": "yes"}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, true, values["quiet"])
	})

	t.Run("AlreadyTyped", func(t *testing.T) {
		values, err := ProjectSchema.Coerce(Metadata{"quiet": false}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, false, values["quiet"])
	})
}

func TestCoerceSequenceWrapping(t *testing.T) {
	for _, f := range ProjectSchema.Fields() {
		if !f.Kind.IsSequence() {
			continue
		}
		t.Run(f.Name, func(t *testing.T) {
			values, err := ProjectSchema.Coerce(Metadata{f.Name: "scalar"}, zerolog.Nop())
			require.NoError(t, err)
			switch f.Kind {
			case KindList:
				assert.Equal(t, []any{"scalar"}, values[f.Name])
			default:
				assert.Equal(t, []string{"scalar"}, values[f.Name])
			}

			// Direct construction wraps scalars too
			s, err := NewProjectSettings(map[string]any{f.Name: "scalar"}, testOptions())
			require.NoError(t, err)
			val, exists := s.Get(f.Name)
			require.True(t, exists)
			assert.Equal(t, "scalar", firstElement(val))
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected int
	}{
		{"SingleElement", []string{"3"}, 3},
		{"FirstElementWins", []string{"7", "9"}, 7},
		{"BareString", "12", 12},
		{"Padded", []string{" 5 "}, 5},
		{"AlreadyTyped", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ProjectSchema.Coerce(Metadata{"max_frontpage_items": tt.raw}, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, values["max_frontpage_items"])
		})
	}

	t.Run("NotANumber", func(t *testing.T) {
		_, err := ProjectSchema.Coerce(Metadata{"parallel": []string{"many"}}, zerolog.Nop())
		assert.ErrorIs(t, err, ErrCoercion)
		assert.Contains(t, err.Error(), "parallel")
		assert.Contains(t, err.Error(), "many")
	})

	t.Run("EmptySequence", func(t *testing.T) {
		_, err := ProjectSchema.Coerce(Metadata{"parallel": []string{}}, zerolog.Nop())
		assert.ErrorIs(t, err, ErrCoercion)
	})
}

func TestCoerceStringJoin(t *testing.T) {
	values, err := ProjectSchema.Coerce(Metadata{
		"summary":  []string{"one", "two"},
		"project":  "Plain",
		"page_dir": []string{"pages"},
	}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo", values["summary"])
	assert.Equal(t, "Plain", values["project"])
	assert.Equal(t, "pages", values["page_dir"])
}

func TestCoerceMap(t *testing.T) {
	t.Run("SplitsOnFirstEquals", func(t *testing.T) {
		values, err := ProjectSchema.Coerce(Metadata{
			"alias": []string{"a=1", "b = 2", "url = https://example.com/?q=x"},
		}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"a":   "1",
			"b":   "2",
			"url": "https://example.com/?q=x",
		}, values["alias"])
	})

	t.Run("SingleString", func(t *testing.T) {
		values, err := ProjectSchema.Coerce(Metadata{"external": "remote = https://example.com"}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"remote": "https://example.com"}, values["external"])
	})

	t.Run("MissingEquals", func(t *testing.T) {
		_, err := ProjectSchema.Coerce(Metadata{"alias": []string{"a=1", "broken"}}, zerolog.Nop())
		var coercionErr *CoercionError
		require.ErrorAs(t, err, &coercionErr)
		assert.Equal(t, "alias", coercionErr.Option)
		assert.Contains(t, err.Error(), "broken")
		assert.Contains(t, err.Error(), "expected '='")
	})
}

func TestCoerceOptional(t *testing.T) {
	values, err := ProjectSchema.Coerce(Metadata{"css": nil}, zerolog.Nop())
	require.NoError(t, err)
	assert.Contains(t, values, "css")
	assert.Nil(t, values["css"])

	_, err = ProjectSchema.Coerce(Metadata{"project": nil}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrCoercion)

	values, err = EntitySchema.Coerce(Metadata{"num_lines": []string{"40"}}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 40, values["num_lines"])
}

func TestCoerceUnknownKey(t *testing.T) {
	opts, logs := captureOptions()
	raw := Metadata{"project": "Demo", "not_an_option": "x"}

	values, err := ProjectSchema.Coerce(raw, opts.Logger)
	require.NoError(t, err)

	assert.NotContains(t, values, "not_an_option")
	assert.Equal(t, "Demo", values["project"])
	assert.Contains(t, logs.String(), "ignoring unknown metadata key")
	assert.Contains(t, logs.String(), "not_an_option")

	// Input is left untouched
	assert.Contains(t, raw, "not_an_option")
}

func TestCoerceErrorsAreDistinct(t *testing.T) {
	_, err := ProjectSchema.Coerce(Metadata{"graph": []string{"sometimes"}}, zerolog.Nop())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMarkerConflict))
	assert.True(t, strings.HasPrefix(err.Error(), "could not convert option 'graph'"),
		fmt.Sprintf("unexpected message %q", err))
}
