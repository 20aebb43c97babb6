package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type WatchdogPresentRule struct{}

func (r *WatchdogPresentRule) ID() string {
	return "obs-watchdog-present"
}

func (r *WatchdogPresentRule) Category() rules.Category {
	return rules.CategoryObservability
}

func (r *WatchdogPresentRule) Question() string {
	return "A watchdog script supervises long-running sessions"
}

func (r *WatchdogPresentRule) Weight() int {
	return 5
}

func (r *WatchdogPresentRule) Remediation() string {
	return "Add a watchdog script (config hooks dir or project scripts dir) that notices stalled or runaway assistant sessions."
}

func (r *WatchdogPresentRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerWatchdog) {
		return rules.Pass("watchdog script found")
	}
	return rules.Fail("no watchdog script in the config hooks dir or project scripts dir")
}

func init() {
	rules.Register(&WatchdogPresentRule{})
}
