package engine

import (
	"context"
	"io"

	"github.com/GrGLeo/dataguard/report"
	"github.com/GrGLeo/dataguard/schema"
)

// Engine drives one validation run against a finalized Plan. It is
// single-threaded by contract (spec.md §5): a single Engine must not be
// shared across concurrent Validate calls, though independent Engines
// over independent Plans may run concurrently (see internal/runpool).
type Engine struct {
	plan *schema.Plan
}

// New builds an Engine for a finalized plan.
func New(plan *schema.Plan) *Engine {
	return &Engine{plan: plan}
}

// Validate runs the plan against r to completion (or until ctx is
// cancelled between batches) and returns the assembled Report. tableName
// is copied into the report verbatim.
func (e *Engine) Validate(ctx context.Context, tableName string, r Reader) (*report.Report, error) {
	if typed, ok := r.(TypedReader); ok {
		return e.validateTyped(ctx, tableName, typed)
	}
	if e.plan.NeedsTwoPass {
		return e.validateTwoPass(ctx, tableName, r)
	}
	return e.validateSinglePass(ctx, tableName, r)
}

func (e *Engine) validateSinglePass(ctx context.Context, tableName string, r Reader) (*report.Report, error) {
	if err := r.Open(ctx); err != nil {
		return nil, readerError(err, "engine: open reader")
	}
	defer r.Close()

	totalRows := 0
	cancelled := false
	for {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		rb, err := r.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readerError(err, "engine: read batch")
		}
		if err := e.applyBatch(rb, totalRows); err != nil {
			return nil, err
		}
		totalRows += rb.Len
	}
	return e.buildReport(tableName, totalRows, cancelled), nil
}

// applyBatch fills every plan column's buffer via its codec and invokes
// every kernel (plus the synthetic TypeCheck) in declared order. Every
// kernel sees every row: no short-circuiting within a row, so per-rule
// counters stay independent (spec.md §4.5.b). Kernels that NeedsTwoPass
// are invoked here too — this is always the run's only full pass over
// the data, whether that's validateSinglePass's one pass or
// validateTwoPass's second pass; by the time either reaches applyBatch,
// any Relation kernel already has its target set via SetTargetValues.
func (e *Engine) applyBatch(rb RowBatch, rowOffset int) error {
	plan := e.plan
	if len(rb.Cells) != len(plan.Columns) {
		return readerErrorf("engine: batch has %d columns, plan has %d", len(rb.Cells), len(plan.Columns))
	}
	for i, col := range plan.Columns {
		col.Buffer.Reset(rb.Len)
		col.Codec.FillBatch(rb.Cells[i], col.Buffer)
		col.TypeCheck.ApplyBatch(col.Buffer, rowOffset)
		for _, k := range col.Kernels {
			k.ApplyBatch(col.Buffer, rowOffset)
		}
	}
	return nil
}

func (e *Engine) buildReport(tableName string, totalRows int, cancelled bool) *report.Report {
	rep := &report.Report{TableName: tableName, TotalRows: totalRows, Cancelled: cancelled}
	for _, col := range e.plan.Columns {
		rep.AddRule(col.Name, col.TypeCheck.Name(), col.TypeCheck.Parameters(), col.TypeCheck.Finalize())
		for _, k := range col.Kernels {
			rep.AddRule(col.Name, k.Name(), k.Parameters(), k.Finalize())
		}
	}
	return rep
}

// relationTargetNames reports which columns this plan needs a first pass
// over.
func relationTargetNames(plan *schema.Plan) []string {
	names := make([]string, 0, len(plan.RelationsForAll()))
	for name := range plan.RelationsForAll() {
		names = append(names, name)
	}
	return names
}
