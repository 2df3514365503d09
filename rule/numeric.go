package rule

import (
	"fmt"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/dgtype"
)

// numericValue reads row i of col as a float64 regardless of whether the
// column is Integer or Float, so the bound-checking kernels below have a
// single code path for both numeric logical types.
func numericValue(col *batch.Column, i int) float64 {
	if col.Type == dgtype.Integer {
		return float64(col.Ints[i])
	}
	return col.Floats[i]
}

// Between fails nulls and values outside the inclusive [lo, hi] range.
// A nil bound means unbounded on that side, so Between also implements
// Min (hi == nil) and Max (lo == nil).
type Between struct {
	counter
	lo, hi *float64
}

// NewBetween builds a Between/Min/Max kernel.
func NewBetween(sampleCap int, lo, hi *float64) *Between {
	return &Between{counter: newCounter(sampleCap), lo: lo, hi: hi}
}

func (k *Between) Name() string {
	switch {
	case k.lo != nil && k.hi != nil:
		return "Between"
	case k.hi == nil:
		return "Min"
	default:
		return "Max"
	}
}

func (k *Between) Parameters() string {
	switch {
	case k.lo != nil && k.hi != nil:
		return fmt.Sprintf("[%g, %g]", *k.lo, *k.hi)
	case k.hi == nil:
		return fmt.Sprintf("[%g]", *k.lo)
	default:
		return fmt.Sprintf("[%g]", *k.hi)
	}
}

func (*Between) NeedsTwoPass() bool { return false }
func (k *Between) Finalize() Result { return k.result() }

// ApplyBatch implements Kernel.
func (k *Between) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i)
		if pass {
			v := numericValue(col, i)
			if k.lo != nil && v < *k.lo {
				pass = false
			}
			if k.hi != nil && v > *k.hi {
				pass = false
			}
		}
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// sign is the shared kernel for IsPositive/IsNegative/IsNonNegative/IsNonPositive.
type sign struct {
	counter
	name string
	ok   func(v float64) bool
}

func newSign(sampleCap int, name string, ok func(v float64) bool) *sign {
	return &sign{counter: newCounter(sampleCap), name: name, ok: ok}
}

func (k *sign) Name() string       { return k.name }
func (*sign) Parameters() string   { return "[]" }
func (*sign) NeedsTwoPass() bool   { return false }
func (k *sign) Finalize() Result   { return k.result() }

// ApplyBatch implements Kernel.
func (k *sign) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i) && k.ok(numericValue(col, i))
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// NewIsPositive builds a strictly-greater-than-zero kernel.
func NewIsPositive(sampleCap int) Kernel {
	return newSign(sampleCap, "IsPositive", func(v float64) bool { return v > 0 })
}

// NewIsNegative builds a strictly-less-than-zero kernel.
func NewIsNegative(sampleCap int) Kernel {
	return newSign(sampleCap, "IsNegative", func(v float64) bool { return v < 0 })
}

// NewIsNonNegative builds a greater-than-or-equal-to-zero kernel.
func NewIsNonNegative(sampleCap int) Kernel {
	return newSign(sampleCap, "IsNonNegative", func(v float64) bool { return v >= 0 })
}

// NewIsNonPositive builds a less-than-or-equal-to-zero kernel.
func NewIsNonPositive(sampleCap int) Kernel {
	return newSign(sampleCap, "IsNonPositive", func(v float64) bool { return v <= 0 })
}

// Monotonic evaluates weak monotonicity (equal adjacents allowed), per
// spec.md §9's resolved open question: a null row is itself counted as a
// pass (it neither breaks the chain nor is it flagged as a monotonicity
// violation — the synthetic TypeCheck kernel is what reports the null),
// and it does not update the carried last-value state. The last observed
// non-null value is carried across batch boundaries so the kernel's
// verdict is identical regardless of batch size.
type Monotonic struct {
	counter
	increasing bool
	hasLast    bool
	last       float64
}

// NewMonotonicIncreasing builds an IsMonotonicallyIncreasing kernel.
func NewMonotonicIncreasing(sampleCap int) *Monotonic {
	return &Monotonic{counter: newCounter(sampleCap), increasing: true}
}

// NewMonotonicDecreasing builds an IsMonotonicallyDecreasing kernel.
func NewMonotonicDecreasing(sampleCap int) *Monotonic {
	return &Monotonic{counter: newCounter(sampleCap), increasing: false}
}

func (k *Monotonic) Name() string {
	if k.increasing {
		return "IsMonotonicallyIncreasing"
	}
	return "IsMonotonicallyDecreasing"
}
func (*Monotonic) Parameters() string { return "[]" }
func (*Monotonic) NeedsTwoPass() bool { return false }
func (k *Monotonic) Finalize() Result { return k.result() }

// ApplyBatch implements Kernel.
func (k *Monotonic) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		if !col.IsValid(i) {
			m.Set(i)
			k.record(rowOffset+i, true, "null")
			continue
		}
		v := numericValue(col, i)
		pass := true
		if k.hasLast {
			if k.increasing {
				pass = v >= k.last
			} else {
				pass = v <= k.last
			}
		}
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
		k.last = v
		k.hasLast = true
	}
	return m
}
