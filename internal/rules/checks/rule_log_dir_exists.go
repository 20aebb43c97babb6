package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type LogDirExistsRule struct{}

func (r *LogDirExistsRule) ID() string {
	return "obs-log-dir-exists"
}

func (r *LogDirExistsRule) Category() rules.Category {
	return rules.CategoryObservability
}

func (r *LogDirExistsRule) Question() string {
	return "A log directory exists for assistant activity"
}

func (r *LogDirExistsRule) Weight() int {
	return 5
}

func (r *LogDirExistsRule) Remediation() string {
	return "Create a logs/ directory (config dir or project root) and point hooks at it; without logs there is no way to reconstruct what the assistant did."
}

func (r *LogDirExistsRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerLogsDir) {
		return rules.Pass("log directory present")
	}
	return rules.Fail("no log directory in the config dir or project root")
}

func init() {
	rules.Register(&LogDirExistsRule{})
}
