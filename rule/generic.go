package rule

import "github.com/GrGLeo/dataguard/batch"

// NotNull fails rows where the valid bit is clear. It accepts any
// logical type.
type NotNull struct {
	counter
}

// NewNotNull builds an IsNotNull kernel.
func NewNotNull(sampleCap int) *NotNull {
	return &NotNull{counter: newCounter(sampleCap)}
}

func (*NotNull) Name() string          { return "IsNotNull" }
func (*NotNull) Parameters() string    { return "[]" }
func (*NotNull) NeedsTwoPass() bool    { return false }
func (k *NotNull) Finalize() Result    { return k.result() }

// ApplyBatch implements Kernel.
func (k *NotNull) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i)
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// TypeCheck is the synthetic pseudo-rule every column carries implicitly,
// accounting for rows that failed to parse (or were empty) separately
// from any user-declared rule on the same column, per spec.md §4.5's
// "Failure semantics".
type TypeCheck struct {
	counter
}

// NewTypeCheck builds the synthetic TypeCheck kernel for one column.
func NewTypeCheck(sampleCap int) *TypeCheck {
	return &TypeCheck{counter: newCounter(sampleCap)}
}

func (*TypeCheck) Name() string       { return "TypeCheck" }
func (*TypeCheck) Parameters() string { return "[]" }
func (*TypeCheck) NeedsTwoPass() bool { return false }
func (k *TypeCheck) Finalize() Result { return k.result() }

// ApplyBatch implements Kernel. A row "passes" TypeCheck when it parsed
// (valid bit set); an empty or cast-failed cell fails it.
func (k *TypeCheck) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		pass := col.IsValid(i)
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, valueString(col, i))
	}
	return m
}

// Unique maintains a hash set of canonical value representations across
// all batches; a row fails if its value has been seen before. Nulls fail
// by default (spec.md §9's resolved open question); NullsUnique flips
// that so null rows count as passes instead.
type Unique struct {
	counter
	seen        map[string]struct{}
	nullsUnique bool
}

// NewUnique builds an IsUnique kernel. nullsUnique, when true, makes null
// rows pass instead of failing by default.
func NewUnique(sampleCap int, nullsUnique bool) *Unique {
	return &Unique{
		counter:     newCounter(sampleCap),
		seen:        make(map[string]struct{}),
		nullsUnique: nullsUnique,
	}
}

func (*Unique) Name() string       { return "IsUnique" }
func (*Unique) Parameters() string { return "[]" }
func (*Unique) NeedsTwoPass() bool { return false }
func (k *Unique) Finalize() Result { return k.result() }

// ApplyBatch implements Kernel.
func (k *Unique) ApplyBatch(col *batch.Column, rowOffset int) *batch.Bitset {
	m := mask(col.Len)
	for i := 0; i < col.Len; i++ {
		if !col.IsValid(i) {
			if k.nullsUnique {
				m.Set(i)
				k.record(rowOffset+i, true, "null")
				continue
			}
			k.record(rowOffset+i, false, "null")
			continue
		}
		v := valueString(col, i)
		_, dup := k.seen[v]
		k.seen[v] = struct{}{}
		pass := !dup
		if pass {
			m.Set(i)
		}
		k.record(rowOffset+i, pass, v)
	}
	return m
}
