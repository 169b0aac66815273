package schema

import (
	"fmt"

	"github.com/dmitrymomot/attrs/constraint"
)

// Field binds an attribute name to its constraint. AllowNil marks the
// attribute optional: a nil or absent value passes without ever reaching the
// constraint engine.
type Field struct {
	Name       string
	Constraint constraint.Constraint
	AllowNil   bool
}

// Required declares a mandatory field.
func Required(name string, c constraint.Constraint) Field {
	return Field{Name: name, Constraint: c}
}

// Optional declares a field that accepts nil or absent values.
func Optional(name string, c constraint.Constraint) Field {
	return Field{Name: name, Constraint: c, AllowNil: true}
}

// Schema is an ordered, immutable registry of field declarations for one
// object type. It is built once at declaration time and read on every
// construction attempt; concurrent use is safe.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New builds a schema from the given field declarations, preserving their
// order. Duplicate or empty attribute names are declaration errors.
func New(fields ...Field) (*Schema, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field %d", ErrEmptyFieldName, i)
		}
		if _, exists := index[f.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		index[f.Name] = i
	}

	declared := make([]Field, len(fields))
	copy(declared, fields)
	return &Schema{fields: declared, index: index}, nil
}

// MustNew is like New but panics on a declaration error. Schemas are
// normally declared in package variables, where a panic surfaces the mistake
// immediately.
func MustNew(fields ...Field) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return s
}

// Fields returns a copy of the declarations in declared order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a declaration by attribute name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}
