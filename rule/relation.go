package rule

import (
	"fmt"

	"github.com/GrGLeo/dataguard/batch"
)

// Relation fails a row whose value is not present in the distinct-value
// set of another column. It requires the two-pass execution described in
// spec.md §4.5: the engine always runs a first pass to collect
// TargetColumn's distinct values, calls SetTargetValues, then runs
// ApplyBatch during the second pass. A plan has no way to supply the
// target set upfront.
type Relation struct {
	counter
	targetColumn string
	set          map[string]struct{}
}

// NewRelation builds a Relation{targetColumn} kernel. SetTargetValues must
// be called before ApplyBatch.
func NewRelation(sampleCap int, targetColumn string) *Relation {
	return &Relation{counter: newCounter(sampleCap), targetColumn: targetColumn}
}

// TargetColumn is the name of the column this relation looks values up in.
func (k *Relation) TargetColumn() string { return k.targetColumn }

// SetTargetValues supplies the distinct-value set collected in pass one.
func (k *Relation) SetTargetValues(set map[string]struct{}) {
	k.set = set
}

func (*Relation) Name() string          { return "Relation" }
func (k *Relation) Parameters() string  { return fmt.Sprintf("[%q]", k.targetColumn) }
func (*Relation) NeedsTwoPass() bool    { return true }
func (k *Relation) Finalize() Result    { return k.result() }

// ApplyBatch implements Kernel. It must only be called during the second
// pass, once SetTargetValues has populated the target set.
func (k *Relation) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := false
		if col.IsValid(i) {
			_, pass = k.set[valueString(col, i)]
		}
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// CollectDistinct adds every valid row's canonical string value in col to
// set. Used by the engine during a Relation rule's first pass.
func CollectDistinct(col *batch.Column, set map[string]struct{}) {
	for i := 0; i < col.Len; i++ {
		if col.IsValid(i) {
			set[valueString(col, i)] = struct{}{}
		}
	}
}
