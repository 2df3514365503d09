// Package columnfile reads and writes a binary, typed columnar
// container: a schema section describing each column's name and
// logical type, followed by one or more row-count-prefixed chunks of
// already-typed column data. Its wire shape — a fixed magic header,
// single-byte chunk markers, and an explicit EOF marker — follows the
// table-serialization format in ts/writer.go and ts/reader.go, adapted
// from that package's generic relational control-table scheme (with
// its own row/value/chunk-sum framing) down to the flat, single-table,
// already-typed batches this package's one caller (the execution
// engine) actually needs.
package columnfile

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/GrGLeo/dataguard/dgtype"
)

// magic identifies a dataguard columnar file; its trailing '1' is the
// format revision, the only one so far.
var magic = []byte{'D', 'G', 'C', 'F', '1'}

const (
	markerChunk byte = 'C'
	markerEOF   byte = 0
)

// ErrBadMagic is returned by Reader.Open when the file does not begin
// with the expected magic header.
var ErrBadMagic = errors.New("columnfile: bad magic header")

// columnDef is one column's schema-section entry: its name and logical
// type, in declared order. The reader matches these positionally
// against the engine's plan columns.
type columnDef struct {
	Name string
	Type dgtype.Type
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func writeInt64(w io.Writer, v int64) error { return writeUint64(w, uint64(v)) }

func readInt64(r io.Reader) (int64, error) {
	v, err := readUint64(r)
	return int64(v), err
}

func writeString(w io.Writer, s string) error {
	if err := writeUint64(w, uint64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readUint64(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// validityBytes packs n valid flags into ceil(n/8) bytes, one bit per
// row, LSB first — independent of batch.Bitset's internal word layout
// since that is not part of its exported surface.
func validityBytes(valid func(i int) bool, n int) []byte {
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		if valid(i) {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

func validityBit(packed []byte, i int) bool {
	return packed[i/8]&(1<<uint(i%8)) != 0
}
