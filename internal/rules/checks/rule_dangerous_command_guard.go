package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

// guardKeywords are treated as evidence that some hook screens tool
// invocations for dangerous commands. Matching is deliberately loose:
// adjacent evidence is credited rather than demanding an exact guard script.
var guardKeywords = []string{"block", "deny", "dangerous", "guard", "rm -rf"}

type DangerousCommandGuardRule struct{}

func (r *DangerousCommandGuardRule) ID() string {
	return "safety-dangerous-command-guard"
}

func (r *DangerousCommandGuardRule) Category() rules.Category {
	return rules.CategorySafety
}

func (r *DangerousCommandGuardRule) Question() string {
	return "Hooks screen tool invocations for dangerous commands"
}

func (r *DangerousCommandGuardRule) Weight() int {
	return 8
}

func (r *DangerousCommandGuardRule) Remediation() string {
	return "Add a PreToolUse hook that inspects commands and blocks destructive ones (e.g. rm -rf, force pushes) before they run."
}

func (r *DangerousCommandGuardRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	for _, kw := range guardKeywords {
		if event, ok := in.HookTextContains(kw); ok {
			return rules.Passf("hook on %s mentions %q", event, kw)
		}
	}
	if len(in.Hooks) == 0 {
		return rules.Fail("no hooks configured, so nothing screens dangerous commands")
	}
	return rules.Failf("none of the %d hook commands mention blocking or guarding", len(in.Hooks))
}

func init() {
	rules.Register(&DangerousCommandGuardRule{})
}
