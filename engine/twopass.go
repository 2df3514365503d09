package engine

import (
	"context"
	"io"

	"github.com/GrGLeo/dataguard/report"
	"github.com/GrGLeo/dataguard/rule"
)

// batchSource is the minimal surface the second pass needs: either a live
// Reader (when Reopen succeeded) or a replay of batches buffered during
// the first pass (when it did not), per spec.md §9's two-pass note.
type batchSource interface {
	next(ctx context.Context) (RowBatch, error)
}

type readerSource struct{ r Reader }

func (s readerSource) next(ctx context.Context) (RowBatch, error) { return s.r.Next(ctx) }

type bufferedSource struct {
	batches []RowBatch
	i       int
}

func (s *bufferedSource) next(context.Context) (RowBatch, error) {
	if s.i >= len(s.batches) {
		return RowBatch{}, io.EOF
	}
	b := s.batches[s.i]
	s.i++
	return b, nil
}

func copyRowBatch(rb RowBatch) RowBatch {
	cells := make([][][]byte, len(rb.Cells))
	for col, column := range rb.Cells {
		copied := make([][]byte, len(column))
		for row, cell := range column {
			c := make([]byte, len(cell))
			copy(c, cell)
			copied[row] = c
		}
		cells[col] = copied
	}
	return RowBatch{Cells: cells, Len: rb.Len}
}

// validateTwoPass implements the Relation rule's two-pass execution
// (spec.md §4.5, §9): a first pass collects each target column's
// distinct-value set, then the engine either reopens the reader for a
// streaming second pass or, if the reader cannot reopen, replays the
// batches it buffered during the first pass.
func (e *Engine) validateTwoPass(ctx context.Context, tableName string, r Reader) (*report.Report, error) {
	plan := e.plan
	if err := r.Open(ctx); err != nil {
		return nil, readerError(err, "engine: open reader")
	}

	targetNames := relationTargetNames(plan)
	targetSets := make(map[string]map[string]struct{}, len(targetNames))
	for _, name := range targetNames {
		targetSets[name] = make(map[string]struct{})
	}

	var buffered []RowBatch
	for {
		rb, err := r.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			r.Close()
			return nil, readerError(err, "engine: read batch (first pass)")
		}
		for _, name := range targetNames {
			idx := plan.ColumnIndex(name)
			col := plan.Columns[idx]
			col.Buffer.Reset(rb.Len)
			col.Codec.FillBatch(rb.Cells[idx], col.Buffer)
			rule.CollectDistinct(col.Buffer, targetSets[name])
		}
		buffered = append(buffered, copyRowBatch(rb))
	}

	for targetName, rels := range plan.RelationsForAll() {
		for _, rel := range rels {
			rel.SetTargetValues(targetSets[targetName])
		}
	}

	var src batchSource
	if err := r.Reopen(ctx); err == nil {
		src = readerSource{r: r}
	} else {
		src = &bufferedSource{batches: buffered}
	}
	defer r.Close()

	totalRows := 0
	cancelled := false
	for {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		rb, err := src.next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readerError(err, "engine: read batch (second pass)")
		}
		if err := e.applyBatch(rb, totalRows); err != nil {
			return nil, err
		}
		totalRows += rb.Len
	}
	return e.buildReport(tableName, totalRows, cancelled), nil
}
