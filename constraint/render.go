package constraint

import (
	"reflect"
	"strings"
)

// Name renders a constraint for use in diagnostics: a simple type renders as
// its friendly type name, a literal set as its values joined by ", ", an
// array constraint as "Array of <element name>", and a union as its branch
// names joined by ", " in declared order.
func Name(c Constraint) string {
	switch c.kind {
	case KindSimpleType:
		return typeLabel(c.target)
	case KindLiteralSet:
		return strings.Join(c.literals, ", ")
	case KindArrayOf:
		return "Array of " + Name(*c.elem)
	case KindUnion:
		return branchNames(c)
	default:
		return "Unknown"
	}
}

func branchNames(c Constraint) string {
	names := make([]string, len(c.branches))
	for i, branch := range c.branches {
		names[i] = Name(branch)
	}
	return strings.Join(names, ", ")
}

// TypeName renders the runtime type of a value for diagnostics. Builtin
// scalars map to friendly names (String, Integer, Float, Boolean), unnamed
// slices and arrays to "Array", unnamed maps to "Hash", and nil to "Nil".
// Named types render under their declared name.
func TypeName(value any) string {
	if value == nil {
		return "Nil"
	}
	return typeLabel(reflect.TypeOf(value))
}

func typeLabel(t reflect.Type) string {
	if t.PkgPath() != "" {
		return t.Name()
	}
	switch t.Kind() {
	case reflect.String:
		return "String"
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Integer"
	case reflect.Float32, reflect.Float64:
		return "Float"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Map:
		return "Hash"
	case reflect.Interface:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	default:
		return t.String()
	}
}
