package rule

import (
	"strconv"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/dgtype"
)

// valueString renders row i of col for use as a sample, or "null" when the
// row did not parse.
func valueString(col *batch.Column, i int) string {
	if !col.IsValid(i) {
		return "null"
	}
	switch col.Type {
	case dgtype.Integer:
		return strconv.FormatInt(col.Ints[i], 10)
	case dgtype.Float:
		return strconv.FormatFloat(col.Floats[i], 'g', -1, 64)
	case dgtype.Date:
		return col.Times[i].Format("2006-01-02T15:04:05Z07:00")
	case dgtype.String:
		return col.StringAt(i)
	default:
		return ""
	}
}

// mask allocates the per-batch pass bitset a kernel returns.
func mask(n int) *batch.Bitset {
	return batch.NewBitset(n)
}
