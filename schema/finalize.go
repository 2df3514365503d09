package schema

import (
	"os"
	"strconv"
	"time"

	"github.com/GrGLeo/dataguard/batch"
	"github.com/GrGLeo/dataguard/codec"
	"github.com/GrGLeo/dataguard/dgtype"
	"github.com/GrGLeo/dataguard/rule"
)

// Options configures Finalize; a zero Options uses the spec's defaults.
type Options struct {
	// BatchSize overrides DATAGUARD_BATCH_SIZE / the 65536 default.
	BatchSize int
	// SampleCap overrides DATAGUARD_SAMPLE_CAP / the 5 default.
	SampleCap int
	// Now overrides DATAGUARD_NOW / time.Now() for temporal rules.
	Now time.Time
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func resolveNow(override time.Time) time.Time {
	if !override.IsZero() {
		return override
	}
	if v := os.Getenv("DATAGUARD_NOW"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Now()
}

// Finalize performs the five steps of spec.md §4.4: validate rule/type
// legality, compile regexes and intern IsIn/relation sets, allocate
// per-column batch buffers and per-kernel state, capture the reference
// timestamp, and freeze the result into an immutable Plan. Calling
// Finalize a second time on the same Builder fails with
// ErrPlanAlreadyFinalized.
func Finalize(b *Builder, opts Options) (*Plan, error) {
	if b.finalized {
		return nil, ErrPlanAlreadyFinalized
	}

	batchSize := opts.BatchSize
	if batchSize == 0 {
		batchSize = envInt("DATAGUARD_BATCH_SIZE", 65536)
	}
	sampleCap := opts.SampleCap
	if sampleCap == 0 {
		sampleCap = envInt("DATAGUARD_SAMPLE_CAP", rule.DefaultSampleCap)
	}
	now := resolveNow(opts.Now)

	plan := &Plan{
		indexByName:       make(map[string]int, len(b.columns)),
		Now:               now,
		BatchSize:         batchSize,
		SampleCap:         sampleCap,
		relationsByTarget: make(map[string][]*rule.Relation),
	}

	for idx, col := range b.columns {
		compiled, err := compileColumn(col, plan, sampleCap, now, batchSize)
		if err != nil {
			return nil, err
		}
		plan.indexByName[col.Name] = idx
		plan.Columns = append(plan.Columns, compiled)
	}

	// Resolve relation targets now that every column name is known.
	for _, col := range plan.Columns {
		for _, k := range col.Kernels {
			rel, ok := k.(*rule.Relation)
			if !ok {
				continue
			}
			if plan.ColumnIndex(rel.TargetColumn()) < 0 {
				return nil, planErrorf("schema: relation on %q references unknown column %q", col.Name, rel.TargetColumn())
			}
			plan.relationsByTarget[rel.TargetColumn()] = append(plan.relationsByTarget[rel.TargetColumn()], rel)
			plan.NeedsTwoPass = true
		}
	}

	b.finalized = true
	return plan, nil
}

func compileColumn(col ColumnSpec, plan *Plan, sampleCap int, now time.Time, batchSize int) (*CompiledColumn, error) {
	if !col.Type.Valid() {
		return nil, planErrorf("schema: column %q has unknown type %v", col.Name, col.Type)
	}

	var c codec.Codec
	switch col.Type {
	case dgtype.Integer:
		c = codec.Int64{}
	case dgtype.Float:
		c = codec.Float64{}
	case dgtype.String:
		c = codec.String{}
	case dgtype.Date:
		if col.Format == "" {
			return nil, planErrorf("schema: date column %q missing format", col.Name)
		}
		c = codec.NewDate(col.Format)
	}

	compiled := &CompiledColumn{
		Name:      col.Name,
		Type:      col.Type,
		Codec:     c,
		Buffer:    batch.NewColumn(col.Type, batchSize),
		TypeCheck: rule.NewTypeCheck(sampleCap),
	}

	for _, rs := range col.Rules {
		if !LegalFor(rs.Kind, col.Type) {
			return nil, planErrorf("schema: rule %s is not legal for column %q of type %s", rs.Kind, col.Name, col.Type)
		}
		k, err := buildKernel(rs, sampleCap, now)
		if err != nil {
			return nil, wrapPlanError(err, "schema: column "+col.Name)
		}
		compiled.Kernels = append(compiled.Kernels, k)
	}
	return compiled, nil
}

func buildKernel(rs RuleSpec, sampleCap int, now time.Time) (rule.Kernel, error) {
	switch rs.Kind {
	case RuleIsNotNull:
		return rule.NewNotNull(sampleCap), nil
	case RuleIsUnique:
		p, _ := rs.Params.(UniqueParams)
		return rule.NewUnique(sampleCap, p.NullsUnique), nil
	case RuleMin:
		p := rs.Params.(BetweenParams)
		return rule.NewBetween(sampleCap, p.Lo, p.Hi), nil
	case RuleMax:
		p := rs.Params.(BetweenParams)
		return rule.NewBetween(sampleCap, p.Lo, p.Hi), nil
	case RuleBetween:
		p := rs.Params.(BetweenParams)
		return rule.NewBetween(sampleCap, p.Lo, p.Hi), nil
	case RuleIsPositive:
		return rule.NewIsPositive(sampleCap), nil
	case RuleIsNegative:
		return rule.NewIsNegative(sampleCap), nil
	case RuleIsNonNegative:
		return rule.NewIsNonNegative(sampleCap), nil
	case RuleIsNonPositive:
		return rule.NewIsNonPositive(sampleCap), nil
	case RuleIsMonotonicIncr:
		return rule.NewMonotonicIncreasing(sampleCap), nil
	case RuleIsMonotonicDecr:
		return rule.NewMonotonicDecreasing(sampleCap), nil
	case RuleWithMinLength:
		p := rs.Params.(LengthParams)
		return rule.NewWithMinLength(sampleCap, *p.Lo), nil
	case RuleWithMaxLength:
		p := rs.Params.(LengthParams)
		return rule.NewWithMaxLength(sampleCap, *p.Hi), nil
	case RuleWithLengthBetween:
		p := rs.Params.(LengthParams)
		return rule.NewWithLengthBetween(sampleCap, derefOr(p.Lo, 0), derefOr(p.Hi, int(^uint(0)>>1))), nil
	case RuleIsExactLength:
		p := rs.Params.(LengthParams)
		return rule.NewIsExactLength(sampleCap, *p.Lo), nil
	case RuleWithRegex:
		p := rs.Params.(RegexParams)
		return rule.NewRegex(sampleCap, p.Pattern, p.CaseInsensitive)
	case RuleIsNumeric:
		return rule.NewIsNumeric(sampleCap), nil
	case RuleIsAlpha:
		return rule.NewIsAlpha(sampleCap), nil
	case RuleIsAlphanumeric:
		return rule.NewIsAlphanumeric(sampleCap), nil
	case RuleIsLowercase:
		return rule.NewIsLowercase(sampleCap), nil
	case RuleIsUppercase:
		return rule.NewIsUppercase(sampleCap), nil
	case RuleIsUrl:
		return rule.NewIsUrl(sampleCap), nil
	case RuleIsEmail:
		return rule.NewIsEmail(sampleCap), nil
	case RuleIsUuid:
		return rule.NewIsUuid(sampleCap), nil
	case RuleIsIn:
		p := rs.Params.(InParams)
		return rule.NewIn(sampleCap, p.Values), nil
	case RuleIsInPast:
		return rule.NewIsInPast(sampleCap, now), nil
	case RuleIsInFuture:
		return rule.NewIsInFuture(sampleCap, now), nil
	case RuleIsNotInPast:
		return rule.NewIsNotInPast(sampleCap, now), nil
	case RuleIsNotInFuture:
		return rule.NewIsNotInFuture(sampleCap, now), nil
	case RuleRelation:
		p := rs.Params.(RelationParams)
		return rule.NewRelation(sampleCap, p.TargetColumn), nil
	default:
		return nil, planErrorf("schema: unknown rule kind %q", rs.Kind)
	}
}

func derefOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
