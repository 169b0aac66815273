package constraint

import (
	"fmt"
	"reflect"
	"strings"
)

// Result is the outcome of evaluating a constraint against a value. A
// mismatch is a regular value, never an error or panic.
type Result struct {
	// OK reports whether the value satisfied the constraint.
	OK bool
	// Diagnostic is the human-readable failure message. Empty when OK.
	Diagnostic string
	// Offending lists the indices of mismatching array elements when the
	// failure is element-shaped. Every element is scanned, not just the first.
	Offending []int
}

// Evaluate checks value against c and returns a pass result or a failure
// carrying a diagnostic. The label is the attribute's human-readable name and
// is embedded verbatim in diagnostics. Evaluate is pure: repeated calls with
// the same inputs yield identical results, and concurrent calls against the
// same constraint are safe.
func Evaluate(c Constraint, value any, label string) Result {
	switch c.kind {
	case KindSimpleType:
		return evalSimpleType(c, value, label)
	case KindLiteralSet:
		return evalLiteralSet(c, value, label)
	case KindArrayOf:
		return evalArrayOf(c, value, label)
	case KindUnion:
		return evalUnion(c, value, label)
	default:
		panic(fmt.Sprintf("constraint: unknown kind %d", c.kind))
	}
}

func pass() Result {
	return Result{OK: true}
}

func fail(format string, args ...any) Result {
	return Result{Diagnostic: fmt.Sprintf(format, args...)}
}

func evalSimpleType(c Constraint, value any, label string) Result {
	if matchesType(c.target, value) {
		return pass()
	}
	return fail("%s is a %s, not a %s", label, TypeName(value), typeLabel(c.target))
}

// matchesType reports whether value's dynamic type is target or a subtype of
// it. Subtyping in Go terms: an interface target accepts any implementation.
// A boolean target matches only values of kind bool, so integers and other
// truthy values never satisfy it.
func matchesType(target reflect.Type, value any) bool {
	if value == nil {
		return false
	}
	vt := reflect.TypeOf(value)
	if target.Kind() == reflect.Bool {
		return vt.Kind() == reflect.Bool
	}
	if vt == target {
		return true
	}
	return target.Kind() == reflect.Interface && vt.Implements(target)
}

func evalLiteralSet(c Constraint, value any, label string) Result {
	if rv := reflect.ValueOf(value); value != nil && rv.Kind() == reflect.String {
		s := rv.String()
		for _, literal := range c.literals {
			if s == literal {
				return pass()
			}
		}
	}
	return fail("%s is a %s, not one of %s", label, TypeName(value), strings.Join(c.literals, ", "))
}

func evalArrayOf(c Constraint, value any, label string) Result {
	if !isArray(value) {
		// Shape check precedes the element check; the "a Array" wording is
		// kept for compatibility with existing consumers.
		return fail("%s is a %s, not a Array", label, TypeName(value))
	}

	rv := reflect.ValueOf(value)
	var offending []int
	for i := 0; i < rv.Len(); i++ {
		if r := Evaluate(*c.elem, rv.Index(i).Interface(), label); !r.OK {
			offending = append(offending, i)
		}
	}
	if len(offending) == 0 {
		return pass()
	}
	return Result{
		Diagnostic: fmt.Sprintf("%s Array contains non-%s elements", label, Name(*c.elem)),
		Offending:  offending,
	}
}

func evalUnion(c Constraint, value any, label string) Result {
	// Every branch is evaluated: the failure diagnostic must be able to
	// enumerate all attempted alternatives in declared order.
	results := make([]Result, len(c.branches))
	matched := false
	for i, branch := range c.branches {
		results[i] = Evaluate(branch, value, label)
		if results[i].OK {
			matched = true
		}
	}
	if matched {
		return pass()
	}

	if isArray(value) {
		// Tie-break policy for array-shaped values: a union with exactly one
		// array branch attributes the failure to that branch's element
		// wording; with zero or several array branches the generic union
		// diagnostic lists every branch.
		arrayBranch := -1
		for i, branch := range c.branches {
			if branch.kind == KindArrayOf {
				if arrayBranch >= 0 {
					arrayBranch = -1
					break
				}
				arrayBranch = i
			}
		}
		if arrayBranch >= 0 {
			return results[arrayBranch]
		}
	}
	return fail("%s is a %s, not one of %s", label, TypeName(value), branchNames(c))
}

func isArray(value any) bool {
	if value == nil {
		return false
	}
	k := reflect.TypeOf(value).Kind()
	return k == reflect.Slice || k == reflect.Array
}
