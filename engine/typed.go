package engine

import (
	"context"
	"io"

	"github.com/GrGLeo/dataguard/report"
	"github.com/GrGLeo/dataguard/rule"
	"github.com/GrGLeo/dataguard/schema"
)

// validateTyped runs the plan against a TypedReader, whose batches are
// already typed batch.Column values — the engine skips C1 codecs
// entirely and invokes kernels directly, per spec.md §6's description of
// the columnar-file reader collaborator.
//
// Two-pass Relation rules require re-reading the source; a TypedReader
// that cannot Reopen cannot be buffered the way a raw RowBatch can
// (buffering would mean cloning whole batch.Column buffers rather than
// byte slices), so this path requires Reopen to succeed when the plan
// declares a Relation.
func (e *Engine) validateTyped(ctx context.Context, tableName string, r TypedReader) (*report.Report, error) {
	plan := e.plan
	if err := r.Open(ctx); err != nil {
		return nil, readerError(err, "engine: open typed reader")
	}
	defer r.Close()

	if plan.NeedsTwoPass {
		targetNames := relationTargetNames(plan)
		targetSets := make(map[string]map[string]struct{}, len(targetNames))
		for _, name := range targetNames {
			targetSets[name] = make(map[string]struct{})
		}
		if err := collectTypedDistinct(ctx, r, plan, targetNames, targetSets); err != nil {
			return nil, err
		}
		if err := r.Reopen(ctx); err != nil {
			return nil, readerError(err, "engine: typed reader cannot reopen for a two-pass relation")
		}
		for targetName, rels := range plan.RelationsForAll() {
			for _, rel := range rels {
				rel.SetTargetValues(targetSets[targetName])
			}
		}
	}

	totalRows := 0
	cancelled := false
	for {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		cols, err := r.NextTyped(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readerError(err, "engine: read typed batch")
		}
		if len(cols) != len(plan.Columns) {
			return nil, readerErrorf("engine: typed batch has %d columns, plan has %d", len(cols), len(plan.Columns))
		}
		rowLen := 0
		if len(cols) > 0 {
			rowLen = cols[0].Len
		}
		for i, planCol := range plan.Columns {
			planCol.TypeCheck.ApplyBatch(cols[i], totalRows)
			for _, k := range planCol.Kernels {
				// By now any Relation kernel (NeedsTwoPass) already has its
				// target set via SetTargetValues, so it runs like any other
				// kernel on this, the run's only full pass.
				k.ApplyBatch(cols[i], totalRows)
			}
		}
		totalRows += rowLen
	}
	return e.buildReport(tableName, totalRows, cancelled), nil
}

// collectTypedDistinct runs the first pass of a two-pass typed run: it
// drains the reader once, collecting each target column's distinct
// values, without invoking any rule kernel.
func collectTypedDistinct(ctx context.Context, r TypedReader, plan *schema.Plan, targetNames []string, targetSets map[string]map[string]struct{}) error {
	for {
		cols, err := r.NextTyped(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return readerError(err, "engine: read typed batch (first pass)")
		}
		for _, name := range targetNames {
			idx := plan.ColumnIndex(name)
			if idx < 0 || idx >= len(cols) {
				continue
			}
			rule.CollectDistinct(cols[idx], targetSets[name])
		}
	}
}
