// Package runpool runs several independent (plan, reader) validations
// concurrently and collects their reports. Its errgroup fan-out follows
// the teacher's internal/start.RunAll (not kept in this tree since this
// is the one place its shape is actually exercised): each run on an
// independent Engine and independent Plan is the same "run all these
// things, fail on the first one that errors" shape, just over
// validations instead of arbitrary StartFunc values.
package runpool

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/GrGLeo/dataguard/engine"
	"github.com/GrGLeo/dataguard/report"
	"github.com/GrGLeo/dataguard/schema"
)

// Job is one table's validation: its plan, its reader, and the table
// name to stamp onto the resulting report.
type Job struct {
	TableName string
	Plan      *schema.Plan
	Reader    engine.Reader
}

// RunAll validates every job concurrently, one Engine per job — a
// single Engine must not be shared across concurrent Validate calls,
// but independent Engines over independent Plans may run concurrently,
// per the engine package's concurrency contract.
//
// Reports are returned in the same order as jobs. If any job fails, the
// others' contexts are cancelled (their runs finish with a partial,
// Cancelled report rather than being aborted mid-batch) and the first
// error is returned.
func RunAll(ctx context.Context, jobs []Job) ([]*report.Report, error) {
	reports := make([]*report.Report, len(jobs))
	group, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			rep, err := engine.New(job.Plan).Validate(gctx, job.TableName, job.Reader)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
