// Package constraint implements the type-constraint engine behind attribute
// validation: an immutable, composable representation of "what is an
// acceptable value here" together with an evaluator that checks a runtime
// value against a constraint and produces a deterministic, human-readable
// diagnostic on mismatch.
//
// # Constraint Model
//
// Four variants cover the declaration surface:
//
//   - simple type      – the value's dynamic type must be the target type, or
//     implement it when the target is an interface
//   - literal set      – the value must equal one of a fixed, ordered set of
//     string literals
//   - array-of         – the value must be a slice or array whose every
//     element satisfies a nested constraint
//   - union            – the value must satisfy at least one of an ordered,
//     non-empty list of branch constraints
//
// Constraints are built once at declaration time and never mutated, so they
// are safe for concurrent evaluation without synchronization.
//
// # Usage
//
//	status := constraint.OneOf("active", "inactive", "pending")
//	tags := constraint.ArrayOf(constraint.Type[string]())
//	ref := constraint.OneOf(
//		constraint.Type[string](),
//		constraint.Type[int](),
//		constraint.ArrayOf(constraint.Type[string]()),
//	)
//
//	res := constraint.Evaluate(ref, 3.14, "Reference")
//	if !res.OK {
//		fmt.Println(res.Diagnostic) // Reference is a Float, not one of String, Integer, Array of String
//	}
//
// # Diagnostics
//
// Union branches are always all evaluated so the failure message can list
// every attempted alternative in declared order. Array constraints check the
// value's shape before its elements: a non-array value fails with the shape
// diagnostic ("not a Array"), never the element one. When a union holding
// exactly one array branch fails against an array-shaped value, the failure
// is attributed to that branch's element wording; in every other array case
// the generic union diagnostic lists all branches.
//
// # Error Handling
//
// A mismatch is a regular Result value, not an error. The only failure that
// escapes as a panic is a declaration-time misuse of the builders, such as a
// union or enum with zero members.
package constraint
