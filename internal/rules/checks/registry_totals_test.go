package checks

import (
	"testing"

	"agentmedic/internal/rules"
)

// The registry is data with a documented weight contract: every category's
// rules sum to its budget, and the grand total is exactly 100.
func TestRegisteredRules_MatchCategoryBudgets(t *testing.T) {
	perCategory := make(map[rules.Category]int)
	seen := make(map[string]bool)
	total := 0

	for _, r := range rules.List() {
		if seen[r.ID()] {
			t.Fatalf("duplicate rule ID %s", r.ID())
		}
		seen[r.ID()] = true

		if r.Weight() <= 0 {
			t.Fatalf("rule %s has non-positive weight", r.ID())
		}
		if r.Question() == "" || r.Remediation() == "" {
			t.Fatalf("rule %s is missing question or remediation text", r.ID())
		}
		perCategory[r.Category()] += r.Weight()
		total += r.Weight()
	}

	for _, c := range rules.CategoryOrder {
		if perCategory[c] != rules.Budget[c] {
			t.Errorf("category %s: weights sum to %d, budget is %d", c, perCategory[c], rules.Budget[c])
		}
	}
	if total != 100 {
		t.Errorf("total weight is %d, want 100", total)
	}
}

func TestRegisteredRules_ListIsCategoryOrdered(t *testing.T) {
	rank := make(map[rules.Category]int)
	for i, c := range rules.CategoryOrder {
		rank[c] = i
	}

	last := -1
	for _, r := range rules.List() {
		cur, ok := rank[r.Category()]
		if !ok {
			t.Fatalf("rule %s has unknown category %s", r.ID(), r.Category())
		}
		if cur < last {
			t.Fatalf("rule %s out of category order", r.ID())
		}
		last = cur
	}
}
