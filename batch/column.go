// Package batch holds one batch's worth of parsed, columnar values plus a
// parallel null bitmap, reused across batches for the lifetime of a plan.
// The layout — dense arrays for numeric/date columns, an offsets+bytes pair
// for strings, a packed bitset for validity — follows the row/value chunk
// buffers the columnar wire format in the storage layer this was grounded
// on used, adapted from an on-disk layout to an in-memory one.
package batch

import (
	"time"

	"github.com/GrGLeo/dataguard/dgtype"
)

// Column is a single plan column's batch buffer. Only the slice matching
// its Type is populated; the others are left at zero length.
type Column struct {
	Type dgtype.Type
	Len  int

	Ints   []int64
	Floats []float64
	Times  []time.Time

	// Strings are packed as value i == StrBytes[StrOffsets[i]:StrOffsets[i+1]].
	StrOffsets []int
	StrBytes   []byte

	Valid *Bitset
}

// NewColumn allocates a Column for the given logical type with capacity
// for cap rows.
func NewColumn(t dgtype.Type, capacity int) *Column {
	c := &Column{Type: t, Valid: NewBitset(capacity)}
	switch t {
	case dgtype.Integer:
		c.Ints = make([]int64, 0, capacity)
	case dgtype.Float:
		c.Floats = make([]float64, 0, capacity)
	case dgtype.Date:
		c.Times = make([]time.Time, 0, capacity)
	case dgtype.String:
		c.StrOffsets = make([]int, 1, capacity+1)
		c.StrOffsets[0] = 0
		c.StrBytes = make([]byte, 0, capacity*16)
	}
	return c
}

// Reset clears the column to zero length and resizes its validity bitset
// to n bits, reusing backing arrays rather than reallocating them — the
// buffer is allocated once at plan finalization and reused between
// batches per the Lifecycles invariant.
func (c *Column) Reset(n int) {
	c.Len = 0
	c.Valid.Reset(n)
	switch c.Type {
	case dgtype.Integer:
		c.Ints = c.Ints[:0]
	case dgtype.Float:
		c.Floats = c.Floats[:0]
	case dgtype.Date:
		c.Times = c.Times[:0]
	case dgtype.String:
		c.StrOffsets = c.StrOffsets[:1]
		c.StrBytes = c.StrBytes[:0]
	}
}

// AppendInt appends an integer row. valid must be false for null rows;
// a zero placeholder keeps indices aligned with Valid.
func (c *Column) AppendInt(v int64, valid bool) {
	c.Ints = append(c.Ints, v)
	c.appendValid(valid)
}

// AppendFloat appends a float row.
func (c *Column) AppendFloat(v float64, valid bool) {
	c.Floats = append(c.Floats, v)
	c.appendValid(valid)
}

// AppendTime appends a date row.
func (c *Column) AppendTime(v time.Time, valid bool) {
	c.Times = append(c.Times, v)
	c.appendValid(valid)
}

// AppendString appends a string row.
func (c *Column) AppendString(v string, valid bool) {
	c.StrBytes = append(c.StrBytes, v...)
	c.StrOffsets = append(c.StrOffsets, len(c.StrBytes))
	c.appendValid(valid)
}

func (c *Column) appendValid(valid bool) {
	if valid {
		c.Valid.Set(c.Len)
	} else {
		c.Valid.Clear(c.Len)
	}
	c.Len++
}

// StringAt returns the string stored at row i. i must be a String column
// index less than Len.
func (c *Column) StringAt(i int) string {
	return string(c.StrBytes[c.StrOffsets[i]:c.StrOffsets[i+1]])
}

// IsValid reports whether row i parsed successfully and was non-empty.
func (c *Column) IsValid(i int) bool {
	return c.Valid.Get(i)
}
