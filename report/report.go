// Package report defines the terminal result of one validation run: the
// per-rule pass/fail counters, optional sampled violations, and overall
// row count described in spec.md §3 and §6. The core engine has no
// precedent for a report type in its teacher, so this package is built
// directly from the specification's field list rather than adapted from
// existing code.
package report

import "github.com/GrGLeo/dataguard/rule"

// Sample is one sampled offending row.
type Sample struct {
	Row   int    `json:"row"`
	Value string `json:"value"`
}

// RuleResult is one rule's verdict for one column.
type RuleResult struct {
	Column     string   `json:"column"`
	RuleName   string   `json:"rule_name"`
	Parameters string   `json:"parameters"`
	Passed     int      `json:"passed"`
	Considered int      `json:"considered"`
	Samples    []Sample `json:"samples,omitempty"`
}

// Report is the terminal, immutable result of one engine.Validate call.
type Report struct {
	TableName string       `json:"table_name"`
	TotalRows int          `json:"total_rows"`
	PerRule   []RuleResult `json:"per_rule"`
	// Passed is [rules_fully_passed, total_rules].
	Passed    [2]int `json:"passed"`
	Cancelled bool   `json:"cancelled"`
}

// FullyPassed reports whether the run was not cancelled and every rule
// in the report passed on every considered row.
func (r *Report) FullyPassed() bool {
	return !r.Cancelled && r.Passed[0] == r.Passed[1]
}

// AddRule appends one kernel's final result to the report, tallying it
// into Passed.
func (r *Report) AddRule(column, ruleName, parameters string, result rule.Result) {
	samples := make([]Sample, 0, len(result.Samples))
	for _, s := range result.Samples {
		samples = append(samples, Sample{Row: s.Row, Value: s.Value})
	}
	r.PerRule = append(r.PerRule, RuleResult{
		Column:     column,
		RuleName:   ruleName,
		Parameters: parameters,
		Passed:     result.Passed,
		Considered: result.Considered,
		Samples:    samples,
	})
	r.Passed[1]++
	if result.Passed == result.Considered {
		r.Passed[0]++
	}
}
