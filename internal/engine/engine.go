// Package engine scores a collected snapshot against the rule registry.
// It is renderer-agnostic and path-agnostic: inputs come in as a value, a
// Report comes out, and nothing here touches the filesystem.
package engine

import (
	"fmt"
	"math"

	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

// Evaluate runs every rule's predicate exactly once against the shared
// snapshot and aggregates the results. Rule order follows list order; no rule
// may depend on another's outcome, so results are order-independent.
func Evaluate(in *inputs.Inputs, list []rules.Rule) *Report {
	report := &Report{
		Results: make([]CheckResult, 0, len(list)),
	}

	perCategory := make(map[rules.Category]*CategoryScore)
	for _, c := range rules.CategoryOrder {
		perCategory[c] = &CategoryScore{Category: c}
	}

	for _, r := range list {
		out := evaluateOne(r, in)

		points := 0
		if out.Passed {
			points = r.Weight()
		}
		report.Results = append(report.Results, CheckResult{
			ID:          r.ID(),
			Category:    r.Category(),
			Question:    r.Question(),
			Weight:      r.Weight(),
			Passed:      out.Passed,
			Detail:      out.Detail,
			Points:      points,
			Remediation: r.Remediation(),
		})

		cs, ok := perCategory[r.Category()]
		if !ok {
			cs = &CategoryScore{Category: r.Category()}
			perCategory[r.Category()] = cs
		}
		cs.Earned += points
		cs.Total += r.Weight()
		report.Earned += points
		report.Total += r.Weight()
	}

	for _, c := range rules.CategoryOrder {
		cs := perCategory[c]
		if cs.Total == 0 {
			continue
		}
		cs.Percent = roundPercent(cs.Earned, cs.Total)
		report.Categories = append(report.Categories, *cs)
	}

	report.Percent = roundPercent(report.Earned, report.Total)
	report.Grade = GradeFor(report.Percent)
	return report
}

// evaluateOne is the defensive boundary around predicate execution. A rule
// that panics is recorded as failed rather than aborting the run, and an
// empty detail is replaced so the non-empty invariant holds downstream.
func evaluateOne(r rules.Rule, in *inputs.Inputs) (out rules.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = rules.Failf("internal evaluation error: %v", rec)
		}
	}()
	out = r.Evaluate(in)
	if out.Detail == "" {
		out.Detail = fmt.Sprintf("no detail reported by %s", r.ID())
	}
	return out
}

func roundPercent(earned, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(earned) / float64(total)))
}
