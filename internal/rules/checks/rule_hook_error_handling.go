package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

// errorHandlingKeywords credit any visible sign of failure handling in hook
// commands. The bare keyword "error" matching anywhere is a documented
// heuristic limitation, kept as-is: partial evidence is scored rather than
// missed.
var errorHandlingKeywords = []string{"error", "exit 1", "exit 2", "||", "set -e"}

type HookErrorHandlingRule struct{}

func (r *HookErrorHandlingRule) ID() string {
	return "hooks-error-handling"
}

func (r *HookErrorHandlingRule) Category() rules.Category {
	return rules.CategoryHooks
}

func (r *HookErrorHandlingRule) Question() string {
	return "Hook commands handle failure"
}

func (r *HookErrorHandlingRule) Weight() int {
	return 5
}

func (r *HookErrorHandlingRule) Remediation() string {
	return "Make hook commands fail loudly (set -e, explicit exit codes, or || fallbacks) so a broken hook is not silently skipped."
}

func (r *HookErrorHandlingRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	for _, kw := range errorHandlingKeywords {
		if event, ok := in.HookTextContains(kw); ok {
			return rules.Passf("hook on %s shows failure handling (%q)", event, kw)
		}
	}
	if len(in.Hooks) == 0 {
		return rules.Fail("no hooks configured")
	}
	return rules.Failf("none of the %d hook commands show failure handling", len(in.Hooks))
}

func init() {
	rules.Register(&HookErrorHandlingRule{})
}
