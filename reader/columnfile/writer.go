package columnfile

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/dgtype"
)

// Writer serializes already-typed batch.Column values to a columnfile
// stream. Schema (column names and types) is written once, by
// WriteSchema, before any batch.
type Writer struct {
	w    io.Writer
	err  error
	defs []columnDef
}

// NewWriter wraps w. Call WriteSchema once, then WriteBatch any number
// of times, then Close.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteSchema writes the magic header and the column name/type list.
// cols gives the column order every subsequent WriteBatch call must
// follow.
func (w *Writer) WriteSchema(names []string, types []dgtype.Type) error {
	if w.err != nil {
		return w.err
	}
	if len(names) != len(types) {
		return errors.New("columnfile: names and types length mismatch")
	}
	if _, err := w.w.Write(magic); err != nil {
		return w.fail(err)
	}
	if err := writeUint64(w.w, uint64(len(names))); err != nil {
		return w.fail(err)
	}
	for i, name := range names {
		if err := writeString(w.w, name); err != nil {
			return w.fail(err)
		}
		if err := writeInt64(w.w, int64(types[i])); err != nil {
			return w.fail(err)
		}
		w.defs = append(w.defs, columnDef{Name: name, Type: types[i]})
	}
	return nil
}

func (w *Writer) fail(err error) error {
	w.err = err
	return err
}

// WriteBatch appends one chunk holding cols, in schema column order.
// Every column must share the same Len.
func (w *Writer) WriteBatch(cols []*batch.Column) error {
	if w.err != nil {
		return w.err
	}
	if len(cols) != len(w.defs) {
		return w.fail(errors.Errorf("columnfile: batch has %d columns, schema has %d", len(cols), len(w.defs)))
	}
	if len(cols) == 0 {
		return nil
	}
	rowCount := cols[0].Len
	if _, err := w.w.Write([]byte{markerChunk}); err != nil {
		return w.fail(err)
	}
	if err := writeInt64(w.w, int64(rowCount)); err != nil {
		return w.fail(err)
	}
	for i, col := range cols {
		if col.Len != rowCount {
			return w.fail(errors.Errorf("columnfile: column %q has %d rows, chunk has %d", w.defs[i].Name, col.Len, rowCount))
		}
		if err := w.writeColumn(col); err != nil {
			return w.fail(err)
		}
	}
	return nil
}

func (w *Writer) writeColumn(col *batch.Column) error {
	validity := validityBytes(col.IsValid, col.Len)
	switch col.Type {
	case dgtype.Integer:
		for _, v := range col.Ints {
			if err := writeInt64(w.w, v); err != nil {
				return err
			}
		}
	case dgtype.Float:
		for _, v := range col.Floats {
			if err := writeUint64(w.w, math.Float64bits(v)); err != nil {
				return err
			}
		}
	case dgtype.Date:
		for _, v := range col.Times {
			if err := writeInt64(w.w, v.UnixNano()); err != nil {
				return err
			}
		}
	case dgtype.String:
		for _, off := range col.StrOffsets {
			if err := writeInt64(w.w, int64(off)); err != nil {
				return err
			}
		}
		if err := writeInt64(w.w, int64(len(col.StrBytes))); err != nil {
			return err
		}
		if _, err := w.w.Write(col.StrBytes); err != nil {
			return err
		}
	}
	_, err := w.w.Write(validity)
	return err
}

// Close writes the EOF marker. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	_, err := w.w.Write([]byte{markerEOF})
	return err
}
