package constraint

import (
	"fmt"
	"reflect"
)

// Type builds a constraint matching values whose dynamic type is T, or that
// implement T when T is an interface type.
func Type[T any]() Constraint {
	return TypeOf(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeOf builds a constraint matching values of the given reflect.Type.
// It panics when t is nil; constraints are declared at program start, so a nil
// type is a programmer error, not a runtime condition.
func TypeOf(t reflect.Type) Constraint {
	if t == nil {
		panic("constraint: TypeOf requires a non-nil type")
	}
	return Constraint{kind: KindSimpleType, target: t}
}

// Enum builds a constraint matching string values equal to one of the given
// literals. Order is preserved for diagnostics; duplicates are allowed but
// redundant. It panics when called with no values.
func Enum(values ...string) Constraint {
	if len(values) == 0 {
		panic("constraint: enum requires at least one value")
	}
	literals := make([]string, len(values))
	copy(literals, values)
	return Constraint{kind: KindLiteralSet, literals: literals}
}

// ArrayOf builds a constraint matching slices and arrays whose every element
// satisfies the element spec. The spec may be a Constraint, a reflect.Type
// (promoted to a simple-type constraint), or a string literal (promoted to a
// one-member literal set).
func ArrayOf(spec any) Constraint {
	elem := promote(spec)
	return Constraint{kind: KindArrayOf, elem: &elem}
}

// OneOf builds a union constraint matching values accepted by at least one of
// the given specs, evaluated in declared order for diagnostic purposes. Each
// spec may be a Constraint, a reflect.Type, or a string literal; bare string
// literals across the argument list are collapsed into a single literal-set
// branch placed at the position of the first literal.
//
// A union of one branch collapses to that branch. Zero specs is a
// declaration-time error and panics.
func OneOf(specs ...any) Constraint {
	if len(specs) == 0 {
		panic("constraint: union requires at least one type")
	}

	var (
		branches   []Constraint
		literals   []string
		literalPos = -1
	)
	for _, spec := range specs {
		if lit, ok := spec.(string); ok {
			if literalPos < 0 {
				literalPos = len(branches)
				branches = append(branches, Constraint{})
			}
			literals = append(literals, lit)
			continue
		}
		branches = append(branches, promote(spec))
	}
	if literalPos >= 0 {
		branches[literalPos] = Enum(literals...)
	}

	if len(branches) == 1 {
		return branches[0]
	}
	return Constraint{kind: KindUnion, branches: branches}
}

// promote converts a builder shorthand into a Constraint.
func promote(spec any) Constraint {
	switch s := spec.(type) {
	case Constraint:
		return s
	case reflect.Type:
		return TypeOf(s)
	case string:
		return Enum(s)
	default:
		panic(fmt.Sprintf("constraint: unsupported spec %T, want Constraint, reflect.Type, or string", spec))
	}
}
