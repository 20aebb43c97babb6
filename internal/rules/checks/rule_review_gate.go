package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

var reviewKeywords = []string{"review", "pull request", "merge request"}

type ReviewGateRule struct{}

func (r *ReviewGateRule) ID() string {
	return "workflow-review-gate"
}

func (r *ReviewGateRule) Category() rules.Category {
	return rules.CategoryWorkflow
}

func (r *ReviewGateRule) Question() string {
	return "Changes go through review before merging"
}

func (r *ReviewGateRule) Weight() int {
	return 5
}

func (r *ReviewGateRule) Remediation() string {
	return "State in the instruction file that assistant changes land via reviewed pull requests, not direct pushes."
}

func (r *ReviewGateRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if kw, ok := in.InstructionsContainAny(reviewKeywords...); ok {
		return rules.Passf("instruction text mentions %q", kw)
	}
	if in.Instructions == "" {
		return rules.Fail("no instruction files found")
	}
	return rules.Fail("no review or pull-request keywords in instruction text")
}

func init() {
	rules.Register(&ReviewGateRule{})
}
