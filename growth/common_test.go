package growth_test

import (
	"testing"

	"github.com/teenjuna/dynarray/growth"
)

func run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		t.Helper()
		t.Parallel()
		fn(t)
	})
}

// increasing asserts that repeatedly applying the policy from 0 yields a strictly increasing
// sequence of capacities.
func increasing(t *testing.T, p growth.Policy, steps int) []int {
	t.Helper()

	var (
		capacity   = 0
		capacities = make([]int, 0, steps)
	)
	for range steps {
		next := p.Next(capacity)
		if next <= capacity {
			t.Fatalf("capacity didn't grow: %d -> %d", capacity, next)
		}
		capacities = append(capacities, next)
		capacity = next
	}

	return capacities
}
