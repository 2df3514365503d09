package codec

import (
	"strconv"

	"github.com/GrGLeo/dataguard/batch"
)

// Int64 parses decimal integers, rejecting values that overflow int64.
type Int64 struct{}

// ParseCell parses a single cell. ok is false for empty input, overflow,
// or any non-integer text.
func (Int64) ParseCell(raw []byte) (int64, bool) {
	trimmed := trimASCIISpace(raw)
	if len(trimmed) == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FillBatch implements Codec.
func (c Int64) FillBatch(cells [][]byte, col *batch.Column) {
	for _, cell := range cells {
		v, ok := c.ParseCell(cell)
		col.AppendInt(v, ok)
	}
}

// Float64 parses decimal floats, rejecting values that overflow float64.
type Float64 struct{}

// ParseCell parses a single cell.
func (Float64) ParseCell(raw []byte) (float64, bool) {
	trimmed := trimASCIISpace(raw)
	if len(trimmed) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FillBatch implements Codec.
func (c Float64) FillBatch(cells [][]byte, col *batch.Column) {
	for _, cell := range cells {
		v, ok := c.ParseCell(cell)
		col.AppendFloat(v, ok)
	}
}
