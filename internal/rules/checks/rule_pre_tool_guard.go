package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type PreToolGuardRule struct{}

func (r *PreToolGuardRule) ID() string {
	return "hooks-pre-tool-guard"
}

func (r *PreToolGuardRule) Category() rules.Category {
	return rules.CategoryHooks
}

func (r *PreToolGuardRule) Question() string {
	return "A hook runs before tool invocations"
}

func (r *PreToolGuardRule) Weight() int {
	return 5
}

func (r *PreToolGuardRule) Remediation() string {
	return "Bind a hook to the PreToolUse event; it is the only point where a tool invocation can be inspected before it runs."
}

func (r *PreToolGuardRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.HookEventContains("pretooluse") {
		return rules.Pass("a PreToolUse hook is configured")
	}
	if len(in.Hooks) == 0 {
		return rules.Fail("no hooks configured")
	}
	return rules.Failf("%d hook entries exist but none bind PreToolUse", len(in.Hooks))
}

func init() {
	rules.Register(&PreToolGuardRule{})
}
