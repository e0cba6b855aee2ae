package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	values := []string{"a", "b", "c", "b"}

	require.Equal(t, 1, FindIndex(values, "b"), "Should return the first match")
	require.Equal(t, -1, FindIndex(values, "z"))
	require.Equal(t, -1, FindIndex(nil, "a"))
}

func TestContains(t *testing.T) {
	require.True(t, Contains([]int{3, 5}, 5))
	require.False(t, Contains([]int{3, 5}, 4))
}

func TestSum(t *testing.T) {
	require.Equal(t, 6, Sum([]int{1, 2, 3}))
	require.Equal(t, 0, Sum([]int{}))
	require.InDelta(t, 1.5, Sum([]float64{0.5, 1}), 1e-9)
}
