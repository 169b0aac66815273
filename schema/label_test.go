package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/attrs/schema"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{"name", "Name"},
		{"created_at", "Created at"},
		{"first_name_prefix", "First name prefix"},
		{"status", "Status"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, schema.Label(tc.name), "name %q", tc.name)
	}
}
