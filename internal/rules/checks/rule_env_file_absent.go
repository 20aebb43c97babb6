package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type EnvFileAbsentRule struct{}

func (r *EnvFileAbsentRule) ID() string {
	return "hygiene-env-file-absent"
}

func (r *EnvFileAbsentRule) Category() rules.Category {
	return rules.CategoryHygiene
}

func (r *EnvFileAbsentRule) Question() string {
	return "No .env file sits in the project root"
}

func (r *EnvFileAbsentRule) Weight() int {
	return 5
}

func (r *EnvFileAbsentRule) Remediation() string {
	return "Move secrets out of a root .env file; anything in the project tree is readable by the assistant and one careless commit away from leaking."
}

func (r *EnvFileAbsentRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerEnvFile) {
		return rules.Fail(".env file present at project root")
	}
	return rules.Pass("no .env file at project root")
}

func init() {
	rules.Register(&EnvFileAbsentRule{})
}
