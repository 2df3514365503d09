package codec

import "github.com/GrGLeo/dataguard/batch"

// String passes cells through unchanged (whitespace is preserved for
// strings per the data model), only detecting the empty-cell null case.
type String struct{}

// ParseCell returns the cell as-is; ok is false only for an empty cell.
func (String) ParseCell(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// FillBatch implements Codec.
func (c String) FillBatch(cells [][]byte, col *batch.Column) {
	for _, cell := range cells {
		v, ok := c.ParseCell(cell)
		col.AppendString(v, ok)
	}
}
