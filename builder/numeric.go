package builder

import (
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/schema"
)

// NumericColumn stages rules shared by Integer and Float columns. The
// Python binding splits IntegerColumn/FloatColumn from a NumericColumn
// base for documentation purposes only — both expose the same rule
// set — so here they share one type distinguished by typ.
type NumericColumn struct {
	name  string
	typ   dgtype.Type
	rules []schema.RuleSpec
}

// IntegerCol begins an integer column declaration named name.
func IntegerCol(name string) NumericColumn {
	return NumericColumn{name: name, typ: dgtype.Integer}
}

// FloatCol begins a float column declaration named name.
func FloatCol(name string) NumericColumn {
	return NumericColumn{name: name, typ: dgtype.Float}
}

func (c NumericColumn) with(rs schema.RuleSpec) NumericColumn {
	c.rules = append(append([]schema.RuleSpec{}, c.rules...), rs)
	return c
}

// Min requires every value to be >= min.
func (c NumericColumn) Min(min float64) NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleMin, Params: schema.BetweenParams{Lo: &min}})
}

// Max requires every value to be <= max.
func (c NumericColumn) Max(max float64) NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleMax, Params: schema.BetweenParams{Hi: &max}})
}

// Between requires every value to fall within [min, max]. Either bound
// may be nil for an unbounded side.
func (c NumericColumn) Between(min, max *float64) NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleBetween, Params: schema.BetweenParams{Lo: min, Hi: max}})
}

// IsPositive requires every value to be > 0.
func (c NumericColumn) IsPositive() NumericColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsPositive}) }

// IsNegative requires every value to be < 0.
func (c NumericColumn) IsNegative() NumericColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsNegative}) }

// IsNonNegative requires every value to be >= 0.
func (c NumericColumn) IsNonNegative() NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsNonNegative})
}

// IsNonPositive requires every value to be <= 0.
func (c NumericColumn) IsNonPositive() NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsNonPositive})
}

// IsMonotonicallyIncreasing requires each non-null value to be >= the
// previous non-null value, in row order.
func (c NumericColumn) IsMonotonicallyIncreasing() NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsMonotonicIncr})
}

// IsMonotonicallyDecreasing requires each non-null value to be <= the
// previous non-null value, in row order.
func (c NumericColumn) IsMonotonicallyDecreasing() NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsMonotonicDecr})
}

// IsNotNull requires every value in the column to be non-null.
func (c NumericColumn) IsNotNull() NumericColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsNotNull}) }

// IsUnique requires every non-null value to occur at most once. Null
// values fail the rule unless nullsUnique is true.
func (c NumericColumn) IsUnique(nullsUnique bool) NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsUnique, Params: schema.UniqueParams{NullsUnique: nullsUnique}})
}

// Relation requires every non-null value to occur somewhere in
// targetColumn, collected over the whole dataset via a first pass.
func (c NumericColumn) Relation(targetColumn string) NumericColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleRelation, Params: schema.RelationParams{TargetColumn: targetColumn}})
}

func (c NumericColumn) spec() schema.ColumnSpec {
	return schema.ColumnSpec{Name: c.name, Type: c.typ, Rules: c.rules}
}
