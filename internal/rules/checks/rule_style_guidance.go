package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

var styleKeywords = []string{"style", "convention", "formatting", "lint"}

type StyleGuidanceRule struct{}

func (r *StyleGuidanceRule) ID() string {
	return "instructions-style-guidance"
}

func (r *StyleGuidanceRule) Category() rules.Category {
	return rules.CategoryInstructions
}

func (r *StyleGuidanceRule) Question() string {
	return "Code style or conventions are documented"
}

func (r *StyleGuidanceRule) Weight() int {
	return 5
}

func (r *StyleGuidanceRule) Remediation() string {
	return "Add style and convention notes (naming, formatting, lint tooling) to the instruction file so generated code matches the codebase."
}

func (r *StyleGuidanceRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if kw, ok := in.InstructionsContainAny(styleKeywords...); ok {
		return rules.Passf("instruction text covers %q", kw)
	}
	if in.Instructions == "" {
		return rules.Fail("no instruction files found")
	}
	return rules.Fail("no style or convention keywords in instruction text")
}

func init() {
	rules.Register(&StyleGuidanceRule{})
}
