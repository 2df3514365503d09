package columnfile

import (
	"context"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/engine"
)

// Reader implements engine.TypedReader over a columnfile on disk. Its
// typed batches let the engine skip the codec stage entirely for every
// column.
type Reader struct {
	Path string

	f    *os.File
	defs []columnDef
	cols []*batch.Column
}

var _ engine.TypedReader = (*Reader)(nil)

// New returns a Reader over path, unopened.
func New(path string) *Reader {
	return &Reader{Path: path}
}

// Open reads the magic header and schema section and allocates one
// reusable batch.Column per declared column.
func (r *Reader) Open(ctx context.Context) error {
	f, err := os.Open(r.Path)
	if err != nil {
		return errors.Wrap(err, "columnfile: open")
	}
	r.f = f
	if err := r.readHeader(); err != nil {
		f.Close()
		return err
	}
	return nil
}

func (r *Reader) readHeader() error {
	got := make([]byte, len(magic))
	if _, err := io.ReadFull(r.f, got); err != nil {
		return errors.Wrap(err, "columnfile: read magic")
	}
	for i, b := range magic {
		if got[i] != b {
			return ErrBadMagic
		}
	}
	n, err := readUint64(r.f)
	if err != nil {
		return errors.Wrap(err, "columnfile: read column count")
	}
	r.defs = make([]columnDef, n)
	r.cols = make([]*batch.Column, n)
	for i := range r.defs {
		name, err := readString(r.f)
		if err != nil {
			return errors.Wrap(err, "columnfile: read column name")
		}
		typTag, err := readInt64(r.f)
		if err != nil {
			return errors.Wrap(err, "columnfile: read column type")
		}
		typ := dgtype.Type(typTag)
		r.defs[i] = columnDef{Name: name, Type: typ}
		r.cols[i] = batch.NewColumn(typ, batchBufferHint)
	}
	return nil
}

// batchBufferHint sizes the first allocation of each reused column
// buffer; Reset grows it as needed for larger chunks.
const batchBufferHint = 4096

// ColumnNames reports the schema's declared column names, in order.
func (r *Reader) ColumnNames() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// NextTyped reads one chunk and returns its columns, reusing the same
// *batch.Column values across calls. Callers must not retain them past
// the next call.
func (r *Reader) NextTyped(ctx context.Context) ([]*batch.Column, error) {
	var marker [1]byte
	if _, err := io.ReadFull(r.f, marker[:]); err != nil {
		return nil, errors.Wrap(err, "columnfile: read chunk marker")
	}
	switch marker[0] {
	case markerEOF:
		return nil, io.EOF
	case markerChunk:
	default:
		return nil, errors.Errorf("columnfile: unknown chunk marker %d", marker[0])
	}

	rowCount64, err := readInt64(r.f)
	if err != nil {
		return nil, errors.Wrap(err, "columnfile: read row count")
	}
	rowCount := int(rowCount64)
	for i, col := range r.cols {
		col.Reset(rowCount)
		if err := r.readColumn(col, r.defs[i].Type, rowCount); err != nil {
			return nil, errors.Wrapf(err, "columnfile: read column %q", r.defs[i].Name)
		}
	}
	return r.cols, nil
}

func (r *Reader) readColumn(col *batch.Column, typ dgtype.Type, rowCount int) error {
	switch typ {
	case dgtype.Integer:
		for i := 0; i < rowCount; i++ {
			v, err := readInt64(r.f)
			if err != nil {
				return err
			}
			col.Ints = append(col.Ints, v)
		}
	case dgtype.Float:
		for i := 0; i < rowCount; i++ {
			bits, err := readUint64(r.f)
			if err != nil {
				return err
			}
			col.Floats = append(col.Floats, math.Float64frombits(bits))
		}
	case dgtype.Date:
		for i := 0; i < rowCount; i++ {
			ns, err := readInt64(r.f)
			if err != nil {
				return err
			}
			col.Times = append(col.Times, time.Unix(0, ns).UTC())
		}
	case dgtype.String:
		offsets := make([]int, rowCount+1)
		for i := range offsets {
			v, err := readInt64(r.f)
			if err != nil {
				return err
			}
			offsets[i] = int(v)
		}
		totalLen, err := readInt64(r.f)
		if err != nil {
			return err
		}
		strBytes := make([]byte, totalLen)
		if _, err := io.ReadFull(r.f, strBytes); err != nil {
			return err
		}
		col.StrOffsets = offsets
		col.StrBytes = strBytes
	}

	packed := make([]byte, (rowCount+7)/8)
	if _, err := io.ReadFull(r.f, packed); err != nil {
		return err
	}
	col.Len = rowCount
	for i := 0; i < rowCount; i++ {
		if validityBit(packed, i) {
			col.Valid.Set(i)
		} else {
			col.Valid.Clear(i)
		}
	}
	return nil
}

// Next satisfies engine.Reader for callers that only need raw cells;
// it renders each typed value back to its textual form and null rows as
// empty cells. Dates are rendered as RFC 3339, so a Date codec reparses
// them only when its format matches that layout.
func (r *Reader) Next(ctx context.Context) (engine.RowBatch, error) {
	cols, err := r.NextTyped(ctx)
	if err != nil {
		return engine.RowBatch{}, err
	}
	cells := make([][][]byte, len(cols))
	for i, col := range cols {
		row := make([][]byte, col.Len)
		for j := 0; j < col.Len; j++ {
			if !col.IsValid(j) {
				row[j] = nil
				continue
			}
			row[j] = []byte(renderCell(col, j))
		}
		cells[i] = row
	}
	rowLen := 0
	if len(cols) > 0 {
		rowLen = cols[0].Len
	}
	return engine.RowBatch{Cells: cells, Len: rowLen}, nil
}

func renderCell(col *batch.Column, i int) string {
	switch col.Type {
	case dgtype.Integer:
		return strconv.FormatInt(col.Ints[i], 10)
	case dgtype.Float:
		return strconv.FormatFloat(col.Floats[i], 'g', -1, 64)
	case dgtype.Date:
		return col.Times[i].Format(time.RFC3339Nano)
	case dgtype.String:
		return col.StringAt(i)
	default:
		return ""
	}
}

// Reopen seeks back to the start of the file and re-reads the header.
func (r *Reader) Reopen(ctx context.Context) error {
	if r.f == nil {
		return r.Open(ctx)
	}
	if _, err := r.f.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "columnfile: seek to start")
	}
	return r.readHeader()
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}
