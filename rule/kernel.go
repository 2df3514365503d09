// Package rule implements the per-rule kernel algebra: one evaluator per
// (column, rule) pair that consumes a typed batch.Column and returns a
// per-row pass mask plus a running aggregate. The "small interface, many
// per-type struct implementations" shape follows the FieldCoder dispatch
// in the storage layer this repository's codecs were grounded on; the
// constraint/batch vocabulary (a Kernel evaluated per declared batch,
// producing pass/fail counts and sampled failures) follows the
// constraint-evaluation shape used by the schema-constraint reference
// file this package consulted for kernel/Result naming
// (Consensys/go-corset's pkg/schema, a non-teacher reference).
package rule

import "github.com/GrGLeo/dataguard/batch"

// Sample is one sampled offending row, captured in file order up to the
// kernel's sample cap.
type Sample struct {
	Row   int
	Value string
}

// Result is a kernel's cumulative verdict across every batch seen so far.
type Result struct {
	Passed     int
	Considered int
	Samples    []Sample
}

// Kernel evaluates one rule against one column across the lifetime of a
// validation run. A Kernel instance is created once at plan finalization
// and owns any cross-batch state it needs (last value for monotonicity,
// seen-set for uniqueness, target set for relations) — never shared,
// never replayed.
type Kernel interface {
	// Name is the rule's report name, e.g. "Between", "IsUnique".
	Name() string
	// Parameters renders the rule's parameters for the report, e.g. "[2, 5]".
	Parameters() string
	// ApplyBatch evaluates every row of col, updates the kernel's running
	// Result, and returns the per-row pass mask for this batch.
	// rowOffset is the number of rows already processed by prior batches,
	// used to compute globally-addressed sample row indices.
	ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset
	// Finalize folds any deferred verdict into the running Result (most
	// kernels have none and return it unchanged) and returns the final
	// Result.
	Finalize() Result
	// NeedsTwoPass reports whether this kernel requires a first pass over
	// the input before it can be evaluated (only Relation does).
	NeedsTwoPass() bool
}

// counter is the shared running-aggregate + sampling logic embedded by
// every concrete kernel, so each rule file only has to implement its
// predicate.
type counter struct {
	passed     int
	considered int
	sampleCap  int
	samples    []Sample
}

func newCounter(sampleCap int) counter {
	return counter{sampleCap: sampleCap}
}

// record accounts for one row's verdict, sampling the offending value if
// it failed and the sample cap has not been reached.
func (c *counter) record(rowGlobal int, pass bool, valueStr string) {
	c.considered++
	if pass {
		c.passed++
		return
	}
	if len(c.samples) < c.sampleCap {
		c.samples = append(c.samples, Sample{Row: rowGlobal, Value: valueStr})
	}
}

func (c *counter) result() Result {
	return Result{Passed: c.passed, Considered: c.considered, Samples: c.samples}
}

// DefaultSampleCap is used when no DATAGUARD_SAMPLE_CAP override applies.
const DefaultSampleCap = 5
