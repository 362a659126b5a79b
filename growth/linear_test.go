package growth_test

import (
	"testing"

	"github.com/teenjuna/dynarray/growth"
	"github.com/teenjuna/dynarray/internal/testing/require"
)

func TestNewLinear(t *testing.T) {
	run(t, "With valid step", func(t *testing.T) {
		require.NotNil(t, growth.NewLinear(4))
	})

	run(t, "With invalid step", func(t *testing.T) {
		require.PanicWithError(t, "step can't be < 1", func() {
			_ = growth.NewLinear(0)
		})
	})
}

func TestLinearNext(t *testing.T) {
	require.Equal(t, increasing(t, growth.NewLinear(4), 4), []int{4, 8, 12, 16})
	require.Equal(t, growth.NewLinear(1).Next(7), 8)
}
