package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	require.True(t, ContainsString([]string{"a", "b"}, "a"))
	require.False(t, ContainsString([]string{"a", "b"}, "c"))
	require.False(t, ContainsString(nil, "a"))
}

func TestRemoveString(t *testing.T) {
	require.Equal(t, []string{"b"}, RemoveString([]string{"a", "b", "a"}, "a"))
	require.Equal(t, []string{"a", "b"}, RemoveString([]string{"a", "b"}, "c"))
	require.Empty(t, RemoveString(nil, "a"))
}
