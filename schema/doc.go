// Package schema provides declarative attribute validation for plain data
// objects: an ordered registry of field declarations, each binding an
// attribute name to a type constraint, enforced atomically on every
// construction attempt.
//
// # Core Concepts
//
// A Schema is declared once, normally in a package variable, and read on
// every instantiation:
//
//	var account = schema.MustNew(
//		schema.Required("name", constraint.Type[string]()),
//		schema.Required("status", constraint.OneOf("active", "inactive", "pending")),
//		schema.Required("tags", constraint.ArrayOf(constraint.Type[string]())),
//		schema.Optional("age", constraint.Type[int]()),
//	)
//
//	values, err := account.Construct(map[string]any{
//		"name":   "alice",
//		"status": "active",
//		"tags":   []any{"admin"},
//	})
//
// Construction fails atomically: every declared field is evaluated, every
// violation contributes exactly one diagnostic, and the aggregate error joins
// them with "; " in declaration order. Values are only ever accepted or
// rejected, never coerced.
//
// # Optional Fields
//
// A field declared with Optional treats nil or absent values as valid without
// evaluating its constraint; the short-circuit happens above the constraint
// engine.
//
// # Struct Binding
//
// Bind populates a struct from validated values using `attr` tags:
//
//	type Account struct {
//		Name   string `attr:"name"`
//		Status string `attr:"status"`
//	}
//
//	var acc Account
//	err := account.Bind(input, &acc)
//
// # Error Handling
//
// Validation failures surface as ValidationErrors, which implements the error
// interface and can be recovered with errors.As or the
// ExtractValidationErrors helper. Malformed construction input (anything that
// is not a string-keyed map) fails with ErrMalformedInput before any field is
// looked at; it is a distinct error kind, not a ValidationErrors.
package schema
