package rules

import "agentmedic/internal/inputs"

// Category is a named scoring dimension. Each category has a fixed weight
// budget; see Budget and the per-rule weights in internal/rules/checks.
type Category string

const (
	CategorySafety        Category = "Safety"
	CategoryHooks         Category = "Hooks"
	CategoryInstructions  Category = "Instructions"
	CategoryMemory        Category = "Memory"
	CategoryMission       Category = "Mission"
	CategoryObservability Category = "Observability"
	CategoryWorkflow      Category = "Workflow"
	CategoryHygiene       Category = "Hygiene"
)

// CategoryOrder is the canonical render and aggregation order.
var CategoryOrder = []Category{
	CategorySafety,
	CategoryHooks,
	CategoryInstructions,
	CategoryMemory,
	CategoryMission,
	CategoryObservability,
	CategoryWorkflow,
	CategoryHygiene,
}

// Budget is the weight total each category's rules must sum to. The grand
// total across all categories is 100.
var Budget = map[Category]int{
	CategorySafety:        20,
	CategoryHooks:         15,
	CategoryInstructions:  15,
	CategoryMemory:        10,
	CategoryMission:       10,
	CategoryObservability: 10,
	CategoryWorkflow:      10,
	CategoryHygiene:       10,
}

// Outcome is the verdict of one predicate invocation. Detail is a
// human-readable justification and is always non-empty, pass or fail.
type Outcome struct {
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

type Rule interface {
	ID() string
	Category() Category

	// Question is the check phrased as what it verifies, suitable for display.
	Question() string

	// Weight is the points awarded when the rule passes. Always positive.
	Weight() int

	// Remediation is actionable guidance shown for failed rules.
	Remediation() string

	// Evaluate runs the rule's heuristic against the shared snapshot.
	// Rules MUST NOT touch the filesystem or retain the snapshot; everything
	// they need is in it, and they must treat it as read-only.
	Evaluate(in *inputs.Inputs) Outcome
}
