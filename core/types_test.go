package core_test

import (
	"testing"

	"github.com/katalvlaran/minspan/core"
	"github.com/stretchr/testify/assert"
)

// TestEdgeLess verifies the canonical edge order level by level: weight
// first, then origin, then destination.
func TestEdgeLess(t *testing.T) {
	cases := []struct {
		name string
		a, b core.Edge
		want bool
	}{
		{
			name: "smaller weight wins",
			a:    core.Edge{Weight: 0.5, From: "Z", To: "Z"},
			b:    core.Edge{Weight: 0.9, From: "A", To: "A"},
			want: true,
		},
		{
			name: "larger weight loses",
			a:    core.Edge{Weight: 2, From: "A", To: "A"},
			b:    core.Edge{Weight: 1, From: "Z", To: "Z"},
			want: false,
		},
		{
			name: "weight tie falls to origin",
			a:    core.Edge{Weight: 1, From: "A", To: "Z"},
			b:    core.Edge{Weight: 1, From: "B", To: "A"},
			want: true,
		},
		{
			name: "origin tie falls to destination",
			a:    core.Edge{Weight: 1, From: "A", To: "B"},
			b:    core.Edge{Weight: 1, From: "A", To: "C"},
			want: true,
		},
		{
			name: "identical edges are not less",
			a:    core.Edge{Weight: 1, From: "A", To: "B"},
			b:    core.Edge{Weight: 1, From: "A", To: "B"},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Less(tc.b))
		})
	}
}
