// Package engine drives the reader collaborator, routes raw row batches
// through the typed codecs, invokes each column's rule kernels in
// declared order, carries cross-batch state, and assembles the final
// Report. Its batch loop follows spec.md §4.5 directly.
package engine

import (
	"context"
	"errors"

	"github.com/GrGLeo/dataguard/batch"
)

// RowBatch is a rectangular array of raw textual cells: Cells[col][row].
// Every column slice has the same length, Len, per the data model's
// rectangular-input invariant.
type RowBatch struct {
	Cells [][][]byte
	Len   int
}

// ErrReopenUnsupported is returned by Reader.Reopen when the underlying
// source cannot be re-read from the start (e.g. a non-seekable stream).
var ErrReopenUnsupported = errors.New("engine: reader does not support reopening")

// Reader is the row-batch source contract external collaborators (a CSV
// tokenizer, a columnar file reader) implement. Next returns io.EOF to
// signal end of stream.
type Reader interface {
	Open(ctx context.Context) error
	Next(ctx context.Context) (RowBatch, error)
	// Reopen restarts the source from the beginning, for the engine's
	// two-pass Relation execution. Implementations that cannot support
	// this return ErrReopenUnsupported; for a plain Reader the engine then
	// replays the batches it buffered, while a TypedReader run fails.
	Reopen(ctx context.Context) error
	Close() error
}

// TypedReader is implemented by collaborators whose batches are already
// typed (a columnar file reader), letting the engine skip C1 codecs
// entirely for those columns.
type TypedReader interface {
	Reader
	// NextTyped returns one already-typed batch per plan column, in plan
	// column order.
	NextTyped(ctx context.Context) ([]*batch.Column, error)
}
