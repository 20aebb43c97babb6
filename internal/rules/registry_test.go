package rules

import (
	"testing"

	"agentmedic/internal/inputs"
)

type stubRule struct {
	id       string
	category Category
	weight   int
}

func (r *stubRule) ID() string                      { return r.id }
func (r *stubRule) Category() Category              { return r.category }
func (r *stubRule) Question() string                { return "stub" }
func (r *stubRule) Weight() int                     { return r.weight }
func (r *stubRule) Remediation() string             { return "stub" }
func (r *stubRule) Evaluate(*inputs.Inputs) Outcome { return Pass("stub") }

func resetRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = nil
	byID = make(map[string]Rule)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register(&stubRule{id: "a", category: CategorySafety, weight: 1})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register(&stubRule{id: "a", category: CategorySafety, weight: 1})
}

func TestRegister_NonPositiveWeightPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero weight")
		}
	}()
	Register(&stubRule{id: "z", category: CategorySafety, weight: 0})
}

func TestList_OrderedByCategoryThenRegistration(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	// Registered out of category order; same-category order must be
	// registration order.
	Register(&stubRule{id: "w1", category: CategoryWorkflow, weight: 1})
	Register(&stubRule{id: "s1", category: CategorySafety, weight: 1})
	Register(&stubRule{id: "s2", category: CategorySafety, weight: 1})
	Register(&stubRule{id: "h1", category: CategoryHooks, weight: 1})

	var ids []string
	for _, r := range List() {
		ids = append(ids, r.ID())
	}
	want := []string{"s1", "s2", "h1", "w1"}
	if len(ids) != len(want) {
		t.Fatalf("want %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("want %v, got %v", want, ids)
		}
	}
}

func TestResolve(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register(&stubRule{id: "a", category: CategorySafety, weight: 1})
	Register(&stubRule{id: "b", category: CategoryHooks, weight: 1})

	got, err := Resolve("b, a")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "b" || got[1].ID() != "a" {
		t.Fatalf("unexpected selection: %v", got)
	}

	all, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve empty error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("empty selector should return all rules, got %d", len(all))
	}

	if _, err := Resolve("missing"); err == nil {
		t.Fatal("expected error for unknown rule ID")
	}
}

func TestBudget_TotalsTo100(t *testing.T) {
	total := 0
	for _, c := range CategoryOrder {
		b, ok := Budget[c]
		if !ok {
			t.Fatalf("category %s has no budget", c)
		}
		if b <= 0 {
			t.Fatalf("category %s has non-positive budget %d", c, b)
		}
		total += b
	}
	if total != 100 {
		t.Fatalf("category budgets sum to %d, want 100", total)
	}
	if len(Budget) != len(CategoryOrder) {
		t.Fatalf("Budget has %d entries, CategoryOrder has %d", len(Budget), len(CategoryOrder))
	}
}
