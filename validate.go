package settings

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// markerOptions are the documentation markers that must be pairwise distinct.
var markerOptions = [...]string{"docmark", "predocmark", "docmark_alt", "predocmark_alt"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report option names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// derive recomputes derived fields and checks invariants. It runs after every
// construction and every overlay, on a value the caller already owns.
func (s *ProjectSettings) derive() error {
	s.Relative = s.ProjectURL == ""
	s.Display = lowerAll(s.Display)
	s.Extensions = union(s.Extensions, s.FppExtensions)

	if err := checkMarkers(s); err != nil {
		return err
	}
	return checkConstraints(s)
}

func (s *ProjectSettings) marker(name string) string {
	switch name {
	case "docmark":
		return s.Docmark
	case "predocmark":
		return s.Predocmark
	case "docmark_alt":
		return s.DocmarkAlt
	case "predocmark_alt":
		return s.PredocmarkAlt
	}
	return ""
}

// checkMarkers fails if any two markers share a non-empty value.
func checkMarkers(s *ProjectSettings) error {
	for i, first := range markerOptions {
		for _, second := range markerOptions[i+1:] {
			mark := s.marker(first)
			if mark != "" && mark == s.marker(second) {
				return &MarkerConflictError{First: first, Second: second, Mark: mark}
			}
		}
	}
	return nil
}

// checkConstraints runs the validate struct tags of a settings record.
func checkConstraints(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("option '%s' violates %s (got %v)", fe.Field(), constraint, fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(msgs, "; "))
}
