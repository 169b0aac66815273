package schema

import (
	"fmt"

	"github.com/dmitrymomot/attrs/constraint"
)

// Validate evaluates every declared field against the candidate values and
// returns nil when all pass, or a ValidationErrors aggregating one diagnostic
// per failing field in declaration order. A failing field never stops the
// evaluation of subsequent fields.
//
// The AllowNil short-circuit happens here, above the constraint engine: a nil
// or absent value for an optional field passes without the constraint being
// evaluated at all.
func (s *Schema) Validate(values map[string]any) error {
	var errs ValidationErrors

	for _, f := range s.fields {
		label := Label(f.Name)

		value, present := values[f.Name]
		if !present || value == nil {
			if f.AllowNil {
				continue
			}
			errs.Add(ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("%s must not be nil", label),
			})
			continue
		}

		res := constraint.Evaluate(f.Constraint, value, label)
		if res.OK {
			continue
		}
		verr := ValidationError{Field: f.Name, Message: res.Diagnostic}
		if len(res.Offending) > 0 {
			verr.Meta = map[string]any{"offending_indices": res.Offending}
		}
		errs.Add(verr)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}
