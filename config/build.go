package config

import (
	"github.com/pkg/errors"

	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/schema"
)

var typeNames = map[string]dgtype.Type{
	"string":  dgtype.String,
	"integer": dgtype.Integer,
	"float":   dgtype.Float,
	"date":    dgtype.Date,
}

// ruleKinds maps a TOML rule's "kind" string to the schema vocabulary.
var ruleKinds = map[string]schema.RuleKind{
	"is_not_null":                 schema.RuleIsNotNull,
	"is_unique":                   schema.RuleIsUnique,
	"min":                         schema.RuleMin,
	"max":                         schema.RuleMax,
	"between":                     schema.RuleBetween,
	"is_positive":                 schema.RuleIsPositive,
	"is_negative":                 schema.RuleIsNegative,
	"is_non_negative":             schema.RuleIsNonNegative,
	"is_non_positive":             schema.RuleIsNonPositive,
	"is_monotonically_increasing": schema.RuleIsMonotonicIncr,
	"is_monotonically_decreasing": schema.RuleIsMonotonicDecr,
	"with_min_length":             schema.RuleWithMinLength,
	"with_max_length":             schema.RuleWithMaxLength,
	"with_length_between":         schema.RuleWithLengthBetween,
	"is_exact_length":             schema.RuleIsExactLength,
	"with_regex":                  schema.RuleWithRegex,
	"is_numeric":                  schema.RuleIsNumeric,
	"is_alpha":                    schema.RuleIsAlpha,
	"is_alphanumeric":             schema.RuleIsAlphanumeric,
	"is_lowercase":                schema.RuleIsLowercase,
	"is_uppercase":                schema.RuleIsUppercase,
	"is_url":                      schema.RuleIsUrl,
	"is_email":                    schema.RuleIsEmail,
	"is_uuid":                     schema.RuleIsUuid,
	"is_in":                       schema.RuleIsIn,
	"is_in_past":                  schema.RuleIsInPast,
	"is_in_future":                schema.RuleIsInFuture,
	"is_not_in_past":              schema.RuleIsNotInPast,
	"is_not_in_future":            schema.RuleIsNotInFuture,
	"relation":                    schema.RuleRelation,
}

// Build compiles cfg into an immutable schema.Plan. opts is passed
// through to schema.Finalize unchanged.
func Build(cfg *Config, opts schema.Options) (*schema.Plan, error) {
	b := schema.NewBuilder()
	for _, colCfg := range cfg.Columns {
		spec, err := columnSpec(colCfg)
		if err != nil {
			return nil, errors.Wrapf(err, "config: column %q", colCfg.Name)
		}
		if err := b.AddColumn(spec); err != nil {
			return nil, err
		}
	}
	return schema.Finalize(b, opts)
}

func columnSpec(cfg ColumnConfig) (schema.ColumnSpec, error) {
	typ, ok := typeNames[cfg.Type]
	if !ok {
		return schema.ColumnSpec{}, errors.Errorf("config: unknown type %q", cfg.Type)
	}
	rules := make([]schema.RuleSpec, 0, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		rs, err := ruleSpec(rc)
		if err != nil {
			return schema.ColumnSpec{}, err
		}
		rules = append(rules, rs)
	}
	return schema.ColumnSpec{Name: cfg.Name, Type: typ, Format: cfg.Format, Rules: rules}, nil
}

func ruleSpec(rc RuleConfig) (schema.RuleSpec, error) {
	kind, ok := ruleKinds[rc.Kind]
	if !ok {
		return schema.RuleSpec{}, errors.Errorf("config: unknown rule kind %q", rc.Kind)
	}
	switch kind {
	case schema.RuleMin:
		return schema.RuleSpec{Kind: kind, Params: schema.BetweenParams{Lo: rc.Min}}, nil
	case schema.RuleMax:
		return schema.RuleSpec{Kind: kind, Params: schema.BetweenParams{Hi: rc.Max}}, nil
	case schema.RuleBetween:
		return schema.RuleSpec{Kind: kind, Params: schema.BetweenParams{Lo: rc.Min, Hi: rc.Max}}, nil
	case schema.RuleWithMinLength:
		return schema.RuleSpec{Kind: kind, Params: schema.LengthParams{Lo: rc.MinLength}}, nil
	case schema.RuleWithMaxLength:
		return schema.RuleSpec{Kind: kind, Params: schema.LengthParams{Hi: rc.MaxLength}}, nil
	case schema.RuleWithLengthBetween:
		return schema.RuleSpec{Kind: kind, Params: schema.LengthParams{Lo: rc.MinLength, Hi: rc.MaxLength}}, nil
	case schema.RuleIsExactLength:
		return schema.RuleSpec{Kind: kind, Params: schema.LengthParams{Lo: rc.ExactLength}}, nil
	case schema.RuleWithRegex:
		return schema.RuleSpec{Kind: kind, Params: schema.RegexParams{Pattern: rc.Pattern, CaseInsensitive: rc.CaseInsensitive}}, nil
	case schema.RuleIsIn:
		return schema.RuleSpec{Kind: kind, Params: schema.InParams{Values: rc.Values}}, nil
	case schema.RuleIsUnique:
		return schema.RuleSpec{Kind: kind, Params: schema.UniqueParams{NullsUnique: rc.NullsUnique}}, nil
	case schema.RuleRelation:
		return schema.RuleSpec{Kind: kind, Params: schema.RelationParams{TargetColumn: rc.TargetColumn}}, nil
	default:
		return schema.RuleSpec{Kind: kind}, nil
	}
}
