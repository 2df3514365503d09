package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/codec"
	"github.com/GrGLeo/dataguard/dgtype"
)

func TestInt64_ParseAndOverflow(t *testing.T) {
	var c codec.Int64
	v, ok := c.ParseCell([]byte(" 42 "))
	require.True(t, ok)
	require.Equal(t, int64(42), v)

	_, ok = c.ParseCell([]byte(""))
	require.False(t, ok)

	_, ok = c.ParseCell([]byte("99999999999999999999999999"))
	require.False(t, ok)

	_, ok = c.ParseCell([]byte("3.14"))
	require.False(t, ok)
}

func TestInt64_FillBatch(t *testing.T) {
	var c codec.Int64
	col := batch.NewColumn(dgtype.Integer, 3)
	c.FillBatch([][]byte{[]byte("1"), []byte(""), []byte("3")}, col)
	require.Equal(t, 3, col.Len)
	require.True(t, col.IsValid(0))
	require.False(t, col.IsValid(1))
	require.True(t, col.IsValid(2))
}

func TestFloat64_ParseCell(t *testing.T) {
	var c codec.Float64
	v, ok := c.ParseCell([]byte("3.14"))
	require.True(t, ok)
	require.InDelta(t, 3.14, v, 1e-9)

	_, ok = c.ParseCell([]byte("not a float"))
	require.False(t, ok)
}

func TestString_EmptyIsNull(t *testing.T) {
	var c codec.String
	v, ok := c.ParseCell([]byte("hello"))
	require.True(t, ok)
	require.Equal(t, "hello", v)

	_, ok = c.ParseCell([]byte(""))
	require.False(t, ok)
}

func TestString_PreservesWhitespace(t *testing.T) {
	var c codec.String
	v, ok := c.ParseCell([]byte("  padded  "))
	require.True(t, ok)
	require.Equal(t, "  padded  ", v)
}

func TestDate_CompileLayoutAndParse(t *testing.T) {
	d := codec.NewDate("%Y-%m-%d")
	v, ok := d.ParseCell([]byte("2026-07-31"))
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), v)

	_, ok = d.ParseCell([]byte("not a date"))
	require.False(t, ok)

	_, ok = d.ParseCell([]byte(""))
	require.False(t, ok)
}

func TestDate_FillBatch(t *testing.T) {
	d := codec.NewDate("%Y-%m-%d")
	col := batch.NewColumn(dgtype.Date, 2)
	d.FillBatch([][]byte{[]byte("2026-01-01"), []byte("garbage")}, col)
	require.True(t, col.IsValid(0))
	require.False(t, col.IsValid(1))
}
