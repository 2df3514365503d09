// Package builder is the fluent, type-staged surface users declare a
// table's columns and rules through. Each staged column type
// (StringColumn, NumericColumn for both Integer and Float, DateColumn)
// restricts its
// method set to the rules legal for that logical type, mirroring the
// Python binding's StringColumn/NumericColumn/IntegerColumn/FloatColumn
// class hierarchy — translated to Go's idiom of a value-returning chain
// rather than mutate-and-return-self, since there is no shared base
// class to lean on here.
//
// Every staged column accumulates schema.RuleSpecs directly;
// Guard.AddColumn hands the finished schema.ColumnSpec values to a
// schema.Builder and Guard.Prepare calls schema.Finalize.
package builder

import (
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/schema"
)

// StringColumn stages rules for a dgtype.String column.
type StringColumn struct {
	name  string
	rules []schema.RuleSpec
}

// StringCol begins a string column declaration named name.
func StringCol(name string) StringColumn {
	return StringColumn{name: name}
}

func (c StringColumn) with(rs schema.RuleSpec) StringColumn {
	c.rules = append(append([]schema.RuleSpec{}, c.rules...), rs)
	return c
}

// IsNotNull requires every value in the column to be non-null.
func (c StringColumn) IsNotNull() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsNotNull}) }

// IsUnique requires every non-null value to occur at most once. Null
// values fail the rule unless nullsUnique is true.
func (c StringColumn) IsUnique(nullsUnique bool) StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsUnique, Params: schema.UniqueParams{NullsUnique: nullsUnique}})
}

// WithMinLength requires at least min runes.
func (c StringColumn) WithMinLength(min int) StringColumn {
	lo := min
	return c.with(schema.RuleSpec{Kind: schema.RuleWithMinLength, Params: schema.LengthParams{Lo: &lo}})
}

// WithMaxLength requires at most max runes.
func (c StringColumn) WithMaxLength(max int) StringColumn {
	hi := max
	return c.with(schema.RuleSpec{Kind: schema.RuleWithMaxLength, Params: schema.LengthParams{Hi: &hi}})
}

// WithLengthBetween requires the rune count to fall within [min, max].
// Either bound may be nil for an unbounded side.
func (c StringColumn) WithLengthBetween(min, max *int) StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleWithLengthBetween, Params: schema.LengthParams{Lo: min, Hi: max}})
}

// IsExactLength requires exactly n runes.
func (c StringColumn) IsExactLength(n int) StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsExactLength, Params: schema.LengthParams{Lo: &n}})
}

// WithRegex requires the value to match pattern, anchored at both ends.
func (c StringColumn) WithRegex(pattern string) StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleWithRegex, Params: schema.RegexParams{Pattern: pattern}})
}

// WithRegexCaseInsensitive is WithRegex with a case-insensitive match.
func (c StringColumn) WithRegexCaseInsensitive(pattern string) StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleWithRegex, Params: schema.RegexParams{Pattern: pattern, CaseInsensitive: true}})
}

// IsNumeric requires every rune to be a Unicode digit.
func (c StringColumn) IsNumeric() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsNumeric}) }

// IsAlpha requires every rune to be a letter.
func (c StringColumn) IsAlpha() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsAlpha}) }

// IsAlphanumeric requires every rune to be a letter or digit.
func (c StringColumn) IsAlphanumeric() StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsAlphanumeric})
}

// IsLowercase requires the value to have no uppercase runes and at
// least one cased rune.
func (c StringColumn) IsLowercase() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsLowercase}) }

// IsUppercase requires the value to have no lowercase runes and at
// least one cased rune.
func (c StringColumn) IsUppercase() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsUppercase}) }

// IsUrl requires a lowercase scheme followed by "://", a non-empty
// authority, and no embedded whitespace.
func (c StringColumn) IsUrl() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsUrl}) }

// IsEmail requires the value to look like an email address.
func (c StringColumn) IsEmail() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsEmail}) }

// IsUuid requires the value to be a hyphenated 8-4-4-4-12 hex UUID.
func (c StringColumn) IsUuid() StringColumn { return c.with(schema.RuleSpec{Kind: schema.RuleIsUuid}) }

// IsIn requires the value to be byte-exact equal to one of values.
func (c StringColumn) IsIn(values []string) StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleIsIn, Params: schema.InParams{Values: values}})
}

// Relation requires every non-null value to occur somewhere in
// targetColumn, collected over the whole dataset via a first pass.
func (c StringColumn) Relation(targetColumn string) StringColumn {
	return c.with(schema.RuleSpec{Kind: schema.RuleRelation, Params: schema.RelationParams{TargetColumn: targetColumn}})
}

func (c StringColumn) spec() schema.ColumnSpec {
	return schema.ColumnSpec{Name: c.name, Type: dgtype.String, Rules: c.rules}
}
