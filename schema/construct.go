package schema

import (
	"fmt"
	"reflect"
)

// Construct runs one construction attempt: the input must be a recognizable
// key/value mapping, and every declared field must satisfy its constraint.
// On success the validated values are returned untouched; nothing is ever
// coerced or converted.
//
// Non-mapping input fails with ErrMalformedInput before any field validation
// runs; a mapping with invalid values fails with the aggregated
// ValidationErrors.
func (s *Schema) Construct(input any) (map[string]any, error) {
	values, err := asMap(input)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(values); err != nil {
		return nil, err
	}
	return values, nil
}

// asMap accepts map[string]any directly and promotes any other map with
// string keys by boxing its values.
func asMap(input any) (map[string]any, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: got nil", ErrMalformedInput)
	}

	if m, ok := input.(map[string]any); ok {
		return m, nil
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: got %T", ErrMalformedInput, input)
	}

	values := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		values[iter.Key().String()] = iter.Value().Interface()
	}
	return values, nil
}
