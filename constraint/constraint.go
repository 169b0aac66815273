package constraint

import "reflect"

// Kind identifies a constraint variant. The set of kinds is closed; the
// evaluator switches exhaustively over it.
type Kind int

const (
	// KindSimpleType matches values of one concrete type.
	KindSimpleType Kind = iota
	// KindLiteralSet matches values equal to one of a fixed set of literals.
	KindLiteralSet
	// KindArrayOf matches arrays whose every element matches a nested constraint.
	KindArrayOf
	// KindUnion matches values accepted by at least one branch constraint.
	KindUnion
)

// Constraint is an immutable rule describing the set of acceptable runtime
// values for one attribute. Constraints are built once at declaration time via
// Type, Enum, ArrayOf, and OneOf, carry no per-evaluation state, and are safe
// to evaluate concurrently against many values.
type Constraint struct {
	kind     Kind
	target   reflect.Type // KindSimpleType
	literals []string     // KindLiteralSet
	elem     *Constraint  // KindArrayOf
	branches []Constraint // KindUnion
}

// Kind returns the constraint variant.
func (c Constraint) Kind() Kind {
	return c.kind
}

// TargetType returns the type a KindSimpleType constraint matches against,
// or nil for other kinds.
func (c Constraint) TargetType() reflect.Type {
	return c.target
}

// Literals returns a copy of the allowed values of a KindLiteralSet
// constraint, in declared order.
func (c Constraint) Literals() []string {
	if c.literals == nil {
		return nil
	}
	out := make([]string, len(c.literals))
	copy(out, c.literals)
	return out
}

// Elem returns the element constraint of a KindArrayOf constraint. It returns
// the zero Constraint for other kinds; check Kind first.
func (c Constraint) Elem() Constraint {
	if c.elem == nil {
		return Constraint{}
	}
	return *c.elem
}

// Branches returns a copy of the branch constraints of a KindUnion
// constraint, in declared order.
func (c Constraint) Branches() []Constraint {
	if c.branches == nil {
		return nil
	}
	out := make([]Constraint, len(c.branches))
	copy(out, c.branches)
	return out
}
