package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Bind runs Construct on the input and populates the exported fields of the
// target struct from the validated values.
//
// It supports struct tags for custom attribute names:
//   - `attr:"name"` - binds to attribute "name"
//   - `attr:"-"` - skips the field
//
// Untagged fields bind to their lowercased name. Values are assigned as-is;
// a validated value whose type is not assignable to the struct field is an
// ErrInvalidTarget, never a silent conversion.
func (s *Schema) Bind(input any, target any) error {
	values, err := s.Construct(input)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidTarget)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidTarget)
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		attrName, skip := parseFieldTag(fieldType)
		if skip {
			continue
		}

		value, exists := values[attrName]
		if !exists || value == nil {
			// No value provided, leave as zero value
			continue
		}

		vv := reflect.ValueOf(value)
		ft := field.Type()
		if ft.Kind() == reflect.Pointer {
			if !vv.Type().AssignableTo(ft.Elem()) {
				return fmt.Errorf("%w: field %s: cannot assign %s to %s", ErrInvalidTarget, fieldType.Name, vv.Type(), ft)
			}
			ptr := reflect.New(ft.Elem())
			ptr.Elem().Set(vv)
			field.Set(ptr)
			continue
		}
		if !vv.Type().AssignableTo(ft) {
			return fmt.Errorf("%w: field %s: cannot assign %s to %s", ErrInvalidTarget, fieldType.Name, vv.Type(), ft)
		}
		field.Set(vv)
	}

	return nil
}

// parseFieldTag parses the struct field tag and returns the attribute name
// and whether to skip the field.
func parseFieldTag(field reflect.StructField) (attrName string, skip bool) {
	tag := field.Tag.Get("attr")
	if tag == "" {
		// No tag, use field name in lowercase
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	// Handle comma-separated tag options (e.g., "name,omitempty")
	tagParts := strings.Split(tag, ",")
	return tagParts[0], false
}
