package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

var branchProtectionKeywords = []string{
	"branch protection",
	"protected branch",
	"force push",
	"never push to main",
	"never push to master",
}

type BranchProtectionGuidanceRule struct{}

func (r *BranchProtectionGuidanceRule) ID() string {
	return "safety-branch-protection-guidance"
}

func (r *BranchProtectionGuidanceRule) Category() rules.Category {
	return rules.CategorySafety
}

func (r *BranchProtectionGuidanceRule) Question() string {
	return "Instructions warn the assistant about protected branches"
}

func (r *BranchProtectionGuidanceRule) Weight() int {
	return 6
}

func (r *BranchProtectionGuidanceRule) Remediation() string {
	return "Add a note to your instruction file telling the assistant which branches are protected and to never force-push."
}

func (r *BranchProtectionGuidanceRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if kw, ok := in.InstructionsContainAny(branchProtectionKeywords...); ok {
		return rules.Passf("instruction text mentions %q", kw)
	}
	if in.Instructions == "" {
		return rules.Fail("no instruction files found")
	}
	return rules.Fail("no branch-protection keywords in instruction text")
}

func init() {
	rules.Register(&BranchProtectionGuidanceRule{})
}
