package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attrs/constraint"
	"github.com/dmitrymomot/attrs/schema"
)

func TestBind(t *testing.T) {
	t.Parallel()

	s := schema.MustNew(
		schema.Required("name", constraint.Type[string]()),
		schema.Required("status", constraint.OneOf("active", "inactive")),
		schema.Optional("age", constraint.Type[int]()),
	)

	type Account struct {
		Name     string `attr:"name"`
		Status   string `attr:"status"`
		Age      *int   `attr:"age"`
		Internal string `attr:"-"`
	}

	t.Run("populates tagged fields", func(t *testing.T) {
		var acc Account
		err := s.Bind(map[string]any{
			"name":   "alice",
			"status": "active",
			"age":    30,
		}, &acc)
		require.NoError(t, err)

		assert.Equal(t, "alice", acc.Name)
		assert.Equal(t, "active", acc.Status)
		require.NotNil(t, acc.Age)
		assert.Equal(t, 30, *acc.Age)
		assert.Empty(t, acc.Internal)
	})

	t.Run("absent optional leaves the zero value", func(t *testing.T) {
		var acc Account
		err := s.Bind(map[string]any{"name": "bob", "status": "inactive"}, &acc)
		require.NoError(t, err)
		assert.Nil(t, acc.Age)
	})

	t.Run("untagged fields bind by lowercased name", func(t *testing.T) {
		type plain struct {
			Name   string
			Status string
		}
		var p plain
		err := s.Bind(map[string]any{"name": "carol", "status": "active"}, &p)
		require.NoError(t, err)
		assert.Equal(t, "carol", p.Name)
		assert.Equal(t, "active", p.Status)
	})

	t.Run("validation failure aborts binding", func(t *testing.T) {
		var acc Account
		err := s.Bind(map[string]any{"name": 1, "status": "active"}, &acc)
		require.Error(t, err)
		assert.True(t, schema.IsValidationError(err))
		assert.Empty(t, acc.Name)
	})

	t.Run("non-pointer target is rejected", func(t *testing.T) {
		var acc Account
		err := s.Bind(map[string]any{"name": "alice", "status": "active"}, acc)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrInvalidTarget)
	})

	t.Run("pointer to non-struct is rejected", func(t *testing.T) {
		name := "alice"
		err := s.Bind(map[string]any{"name": "alice", "status": "active"}, &name)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrInvalidTarget)
	})

	t.Run("unassignable value is rejected without conversion", func(t *testing.T) {
		type mismatched struct {
			Name int `attr:"name"`
		}
		var m mismatched
		err := s.Bind(map[string]any{"name": "alice", "status": "active"}, &m)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrInvalidTarget)
	})
}
