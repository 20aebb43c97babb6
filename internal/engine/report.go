package engine

import (
	"sort"

	"agentmedic/internal/rules"
)

// CheckResult pairs one rule with its outcome for this run. Points is the
// rule's weight when passed, 0 otherwise.
type CheckResult struct {
	ID          string         `json:"id"`
	Category    rules.Category `json:"category"`
	Question    string         `json:"question"`
	Weight      int            `json:"weight"`
	Passed      bool           `json:"passed"`
	Detail      string         `json:"detail"`
	Points      int            `json:"points"`
	Remediation string         `json:"-"`
}

// CategoryScore is the aggregation of one category's results.
type CategoryScore struct {
	Category rules.Category `json:"category"`
	Earned   int            `json:"earned"`
	Total    int            `json:"total"`
	Percent  int            `json:"percent"`
}

// Report is the terminal artifact of a run: overall score, grade, ordered
// per-category scores, and per-check results in registry order. It is
// immutable once returned by Evaluate; renderers only read it.
type Report struct {
	Earned     int             `json:"earned"`
	Total      int             `json:"total"`
	Percent    int             `json:"percent"`
	Grade      Grade           `json:"grade"`
	Categories []CategoryScore `json:"categories"`
	Results    []CheckResult   `json:"results"`
}

// FailedByWeight returns failed results sorted by descending weight, ties
// broken by registry order. Used by renderers for the top-fixes section.
func (r *Report) FailedByWeight() []CheckResult {
	var failed []CheckResult
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	sort.SliceStable(failed, func(i, j int) bool {
		return failed[i].Weight > failed[j].Weight
	})
	return failed
}
