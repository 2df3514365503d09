// Package schema compiles a user-declared set of columns and rules into
// an immutable Plan the execution engine can run. Its append-then-freeze
// shape — accumulate ColumnSpecs, validate and allocate cross-batch state
// once, then refuse further mutation — follows the
// accumulate-then-validate pattern of the storage layer's own
// Encoder.Table/Table.Use construction, generalized from "assign a
// control-table row id" to "compile a rule plan".
package schema

import "github.com/GrGLeo/dataguard/dgtype"

// RuleKind names one of the rules in the kernel algebra.
type RuleKind string

// The full rule vocabulary, grouped as in spec.md §4.3.
const (
	RuleIsNotNull RuleKind = "IsNotNull"
	RuleIsUnique  RuleKind = "IsUnique"

	RuleMin               RuleKind = "Min"
	RuleMax               RuleKind = "Max"
	RuleBetween           RuleKind = "Between"
	RuleIsPositive        RuleKind = "IsPositive"
	RuleIsNegative        RuleKind = "IsNegative"
	RuleIsNonNegative     RuleKind = "IsNonNegative"
	RuleIsNonPositive     RuleKind = "IsNonPositive"
	RuleIsMonotonicIncr   RuleKind = "IsMonotonicallyIncreasing"
	RuleIsMonotonicDecr   RuleKind = "IsMonotonicallyDecreasing"

	RuleWithMinLength     RuleKind = "WithMinLength"
	RuleWithMaxLength     RuleKind = "WithMaxLength"
	RuleWithLengthBetween RuleKind = "WithLengthBetween"
	RuleIsExactLength     RuleKind = "IsExactLength"
	RuleWithRegex         RuleKind = "WithRegex"
	RuleIsNumeric         RuleKind = "IsNumeric"
	RuleIsAlpha           RuleKind = "IsAlpha"
	RuleIsAlphanumeric    RuleKind = "IsAlphanumeric"
	RuleIsLowercase       RuleKind = "IsLowercase"
	RuleIsUppercase       RuleKind = "IsUppercase"
	RuleIsUrl             RuleKind = "IsUrl"
	RuleIsEmail           RuleKind = "IsEmail"
	RuleIsUuid            RuleKind = "IsUuid"
	RuleIsIn              RuleKind = "IsIn"

	RuleIsInPast      RuleKind = "IsInPast"
	RuleIsInFuture    RuleKind = "IsInFuture"
	RuleIsNotInPast   RuleKind = "IsNotInPast"
	RuleIsNotInFuture RuleKind = "IsNotInFuture"

	RuleRelation RuleKind = "Relation"
)

// legalTypes maps each rule to the logical types it accepts. A kind
// absent here is legal for no type, so Finalize rejects it with a
// PlanError.
var legalTypes = map[RuleKind][]dgtype.Type{
	RuleIsNotNull: {dgtype.String, dgtype.Integer, dgtype.Float, dgtype.Date},
	RuleIsUnique:  {dgtype.String, dgtype.Integer, dgtype.Float, dgtype.Date},
	RuleRelation:  {dgtype.String, dgtype.Integer, dgtype.Float, dgtype.Date},

	RuleMin:             {dgtype.Integer, dgtype.Float},
	RuleMax:             {dgtype.Integer, dgtype.Float},
	RuleBetween:         {dgtype.Integer, dgtype.Float},
	RuleIsPositive:      {dgtype.Integer, dgtype.Float},
	RuleIsNegative:      {dgtype.Integer, dgtype.Float},
	RuleIsNonNegative:   {dgtype.Integer, dgtype.Float},
	RuleIsNonPositive:   {dgtype.Integer, dgtype.Float},
	RuleIsMonotonicIncr: {dgtype.Integer, dgtype.Float},
	RuleIsMonotonicDecr: {dgtype.Integer, dgtype.Float},

	RuleWithMinLength:     {dgtype.String},
	RuleWithMaxLength:     {dgtype.String},
	RuleWithLengthBetween: {dgtype.String},
	RuleIsExactLength:     {dgtype.String},
	RuleWithRegex:         {dgtype.String},
	RuleIsNumeric:         {dgtype.String},
	RuleIsAlpha:           {dgtype.String},
	RuleIsAlphanumeric:    {dgtype.String},
	RuleIsLowercase:       {dgtype.String},
	RuleIsUppercase:       {dgtype.String},
	RuleIsUrl:             {dgtype.String},
	RuleIsEmail:           {dgtype.String},
	RuleIsUuid:            {dgtype.String},
	RuleIsIn:              {dgtype.String},

	RuleIsInPast:      {dgtype.Date},
	RuleIsInFuture:    {dgtype.Date},
	RuleIsNotInPast:   {dgtype.Date},
	RuleIsNotInFuture: {dgtype.Date},
}

// LegalFor reports whether kind may be attached to a column of type t.
func LegalFor(kind RuleKind, t dgtype.Type) bool {
	for _, legal := range legalTypes[kind] {
		if legal == t {
			return true
		}
	}
	return false
}

// BetweenParams parametrizes Min ({Hi: nil}), Max ({Lo: nil}), and Between.
type BetweenParams struct{ Lo, Hi *float64 }

// LengthParams parametrizes WithMinLength, WithMaxLength,
// WithLengthBetween, and IsExactLength.
type LengthParams struct{ Lo, Hi *int }

// RegexParams parametrizes WithRegex.
type RegexParams struct {
	Pattern         string
	CaseInsensitive bool
}

// InParams parametrizes IsIn.
type InParams struct{ Values []string }

// UniqueParams parametrizes IsUnique.
type UniqueParams struct{ NullsUnique bool }

// RelationParams parametrizes Relation.
type RelationParams struct{ TargetColumn string }

// RuleSpec is a tagged variant naming one rule together with its
// parameters, per spec.md §3.
type RuleSpec struct {
	Kind   RuleKind
	Params any
}

// ColumnSpec is a named column with a declared logical type and an
// ordered list of rule specs.
type ColumnSpec struct {
	Name   string
	Type   dgtype.Type
	Format string // strftime-like format, Date columns only
	Rules  []RuleSpec
}
