package builder

import (
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/schema"
)

// DateColumn stages rules for a dgtype.Date column. format is a
// strftime-like layout (e.g. "%Y-%m-%d") applied to every cell in the
// column, per spec.md's date codec.
type DateColumn struct {
	name   string
	format string
	rules  []schema.RuleSpec
}

// DateCol begins a date column declaration named name, parsed with the
// given strftime-like format.
func DateCol(name, format string) DateColumn {
	return DateColumn{name: name, format: format}
}

func (c DateColumn) with(rs schema.RuleSpec) DateColumn {
	c.rules = append(append([]schema.RuleSpec{}, c.rules...), rs)
	return c
}

// IsNotNull requires every value in the column to be non-null.
func (c DateColumn) IsNotNull() DateColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsNotNull}) }

// IsUnique requires every non-null value to occur at most once. Null
// values fail the rule unless nullsUnique is true.
func (c DateColumn) IsUnique(nullsUnique bool) DateColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsUnique, Params: schema.UniqueParams{NullsUnique: nullsUnique}})
}

// IsInPast requires every value to be strictly before the run's
// reference timestamp.
func (c DateColumn) IsInPast() DateColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsInPast}) }

// IsInFuture requires every value to be strictly after the run's
// reference timestamp.
func (c DateColumn) IsInFuture() DateColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsInFuture}) }

// IsNotInPast requires every value to be at or after the run's
// reference timestamp.
func (c DateColumn) IsNotInPast() DateColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsNotInPast}) }

// IsNotInFuture requires every value to be at or before the run's
// reference timestamp.
func (c DateColumn) IsNotInFuture() DateColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsNotInFuture})
}

// Relation requires every non-null value to occur somewhere in
// targetColumn, collected over the whole dataset via a first pass.
func (c DateColumn) Relation(targetColumn string) DateColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleRelation, Params: schema.RelationParams{TargetColumn: targetColumn}})
}

func (c DateColumn) spec() schema.ColumnSpec {
	return schema.ColumnSpec{Name: c.name, Type: dgtype.Date, Format: c.format, Rules: c.rules}
}
