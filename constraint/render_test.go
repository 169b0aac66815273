package constraint_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/attrs/constraint"
)

func TestName(t *testing.T) {
	t.Parallel()

	t.Run("simple types", func(t *testing.T) {
		assert.Equal(t, "String", constraint.Name(constraint.Type[string]()))
		assert.Equal(t, "Integer", constraint.Name(constraint.Type[int]()))
		assert.Equal(t, "Float", constraint.Name(constraint.Type[float64]()))
		assert.Equal(t, "Boolean", constraint.Name(constraint.Type[bool]()))
		assert.Equal(t, "Hash", constraint.Name(constraint.Type[map[string]any]()))
		assert.Equal(t, "UUID", constraint.Name(constraint.Type[uuid.UUID]()))
	})

	t.Run("literal set joins values", func(t *testing.T) {
		assert.Equal(t, "active, inactive", constraint.Name(constraint.Enum("active", "inactive")))
	})

	t.Run("array of element", func(t *testing.T) {
		assert.Equal(t, "Array of String", constraint.Name(constraint.ArrayOf(constraint.Type[string]())))
		assert.Equal(t, "Array of Hash", constraint.Name(constraint.ArrayOf(constraint.Type[map[string]any]())))
	})

	t.Run("union joins branch names in declared order", func(t *testing.T) {
		c := constraint.OneOf(
			constraint.Type[string](),
			constraint.Type[int](),
			constraint.ArrayOf(constraint.Type[string]()),
		)
		assert.Equal(t, "String, Integer, Array of String", constraint.Name(c))
	})
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "x", "String"},
		{"int", 1, "Integer"},
		{"int64", int64(1), "Integer"},
		{"uint", uint(1), "Integer"},
		{"float64", 3.14, "Float"},
		{"float32", float32(1.5), "Float"},
		{"bool", true, "Boolean"},
		{"slice", []int{1}, "Array"},
		{"array", [2]string{}, "Array"},
		{"map", map[string]any{}, "Hash"},
		{"nil", nil, "Nil"},
		{"named type", uuid.Nil, "UUID"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, constraint.TypeName(tc.value))
		})
	}
}
