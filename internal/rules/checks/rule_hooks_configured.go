package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type HooksConfiguredRule struct{}

func (r *HooksConfiguredRule) ID() string {
	return "hooks-configured"
}

func (r *HooksConfiguredRule) Category() rules.Category {
	return rules.CategoryHooks
}

func (r *HooksConfiguredRule) Question() string {
	return "At least one lifecycle hook is configured"
}

func (r *HooksConfiguredRule) Weight() int {
	return 5
}

func (r *HooksConfiguredRule) Remediation() string {
	return "Define hooks in your settings file so the assistant's lifecycle events trigger your own commands."
}

func (r *HooksConfiguredRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if n := len(in.Hooks); n > 0 {
		return rules.Passf("%d hook entries configured", n)
	}
	return rules.Fail("no hook entries found in any settings file")
}

func init() {
	rules.Register(&HooksConfiguredRule{})
}
