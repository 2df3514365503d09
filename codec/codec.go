// Package codec parses raw textual cells into typed values and fills
// columnar batch buffers. The per-type struct + small interface shape
// mirrors the FieldCoder dispatch in the storage layer this was grounded
// on (one struct per wire type, switched on via an interface method),
// turned around from encoding values into a wire format to decoding text
// into typed values.
package codec

import "github.com/GrGLeo/dataguard/batch"

// Codec parses raw cells for one logical column type.
type Codec interface {
	// FillBatch parses each raw cell in cells and appends the result to col.
	// Empty cells and cells that fail to parse both append as null, per the
	// data model's uniform null semantics.
	FillBatch(cells [][]byte, col *batch.Column)
}

func trimASCIISpace(b []byte) []byte {
	start := 0
	for start < len(b) && isASCIISpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isASCIISpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isASCIISpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
