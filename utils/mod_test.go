package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should find the first occurrence")
	require.Equal(t, -1, FindIndex([]int{1, 2, 3}, 4))
	require.Equal(t, -1, FindIndex(nil, 4))

	var items []any = []any{1, "x", nil}
	require.Equal(t, 2, FindIndex(items, nil), "Interfaces compare by dynamic value")
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	require.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4, 5}, even))
	require.Empty(t, Filter([]int{1, 3}, even))
}
