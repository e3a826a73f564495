package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_TransformSlice(t *testing.T) {
	type foo struct {
		name  string
		value int
	}
	pairs := []foo{{"a", 1}, {"c", 3}, {"b", 2}}
	names := TransformSlice(pairs, func(v foo) string { return v.name })
	require.Equal(t, []string{"a", "c", "b"}, names)
}
