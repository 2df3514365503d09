package rule

import (
	"time"

	"github.com/GrGLeo/dataguard/batch"
)

// temporal is the shared kernel for IsInPast/IsInFuture/IsNotInPast/IsNotInFuture.
// now is captured once at plan finalization so repeated runs on the same
// input are deterministic for a given plan, per spec.md §4.3.
type temporal struct {
	counter
	name string
	now  time.Time
	ok   func(v, now time.Time) bool
}

func newTemporal(sampleCap int, name string, now time.Time, ok func(v, now time.Time) bool) *temporal {
	return &temporal{counter: newCounter(sampleCap), name: name, now: now, ok: ok}
}

func (k *temporal) Name() string     { return k.name }
func (*temporal) Parameters() string { return "[]" }
func (*temporal) NeedsTwoPass() bool { return false }
func (k *temporal) Finalize() Result { return k.result() }

// ApplyBatch implements Kernel.
func (k *temporal) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i) && k.ok(col.Times[i], k.now)
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// NewIsInPast builds an IsInPast kernel against the plan's reference time.
func NewIsInPast(sampleCap int, now time.Time) Kernel {
	return newTemporal(sampleCap, "IsInPast", now, func(v, now time.Time) bool { return v.Before(now) })
}

// NewIsInFuture builds an IsInFuture kernel.
func NewIsInFuture(sampleCap int, now time.Time) Kernel {
	return newTemporal(sampleCap, "IsInFuture", now, func(v, now time.Time) bool { return v.After(now) })
}

// NewIsNotInPast builds an IsNotInPast kernel.
func NewIsNotInPast(sampleCap int, now time.Time) Kernel {
	return newTemporal(sampleCap, "IsNotInPast", now, func(v, now time.Time) bool { return !v.Before(now) })
}

// NewIsNotInFuture builds an IsNotInFuture kernel.
func NewIsNotInFuture(sampleCap int, now time.Time) Kernel {
	return newTemporal(sampleCap, "IsNotInFuture", now, func(v, now time.Time) bool { return !v.After(now) })
}
