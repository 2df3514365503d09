package schema

import (
	"time"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/codec"
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/rule"
)

// CompiledColumn is one column of a finalized Plan: its codec, its reused
// batch buffer, its synthetic TypeCheck kernel, and its declared rule
// kernels in their original order.
type CompiledColumn struct {
	Name      string
	Type      dgtype.Type
	Codec     codec.Codec
	Buffer    *batch.Column
	TypeCheck *rule.TypeCheck
	Kernels   []rule.Kernel
}

// Plan is the immutable, compiled schema produced by Finalize. It is
// read-only for the lifetime of an engine.Validate call.
type Plan struct {
	Columns      []*CompiledColumn
	indexByName  map[string]int
	Now          time.Time
	BatchSize    int
	SampleCap    int
	NeedsTwoPass bool
	// relationsByTarget maps a target column name to the Relation kernels
	// that need its distinct-value set. Finalize fills the map; the engine
	// hands each kernel its set after the first pass of a two-pass run.
	relationsByTarget map[string][]*rule.Relation
}

// ColumnIndex returns the position of a named column in Columns, or -1.
func (p *Plan) ColumnIndex(name string) int {
	if idx, ok := p.indexByName[name]; ok {
		return idx
	}
	return -1
}

// RelationsFor returns the Relation kernels that need targetColumn's
// distinct-value set.
func (p *Plan) RelationsFor(targetColumn string) []*rule.Relation {
	return p.relationsByTarget[targetColumn]
}

// RelationsForAll returns every target column name this plan needs a
// first pass over, mapped to the Relation kernels waiting on it.
func (p *Plan) RelationsForAll() map[string][]*rule.Relation {
	return p.relationsByTarget
}
