package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/reader/columnfile"
	"github.com/GrGLeo/dataguard/reader/csv"
)

func TestOpenReader(t *testing.T) {
	r, err := openReader("csv", "does-not-need-to-exist.csv", true)
	require.NoError(t, err)
	_, ok := r.(*csv.Reader)
	require.True(t, ok)

	r, err = openReader("columnfile", "does-not-need-to-exist.dgcf", true)
	require.NoError(t, err)
	_, ok2 := r.(*columnfile.Reader)
	require.True(t, ok2)

	_, err = openReader("parquet", "x", true)
	require.Error(t, err)
}
