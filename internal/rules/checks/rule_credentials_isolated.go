package checks

import (
	"regexp"

	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

// secretTokenPattern matches high-entropy token prefixes in the lower-cased
// instruction text: OpenAI/Anthropic-style sk- keys, GitHub PATs, and AWS
// access key IDs.
var secretTokenPattern = regexp.MustCompile(`(sk-[a-z0-9\-_]{20,}|ghp_[a-z0-9]{36}|akia[0-9a-z]{16})`)

type CredentialsIsolatedRule struct{}

func (r *CredentialsIsolatedRule) ID() string {
	return "safety-credentials-isolated"
}

func (r *CredentialsIsolatedRule) Category() rules.Category {
	return rules.CategorySafety
}

func (r *CredentialsIsolatedRule) Question() string {
	return "No plaintext credentials in reach of the assistant"
}

func (r *CredentialsIsolatedRule) Weight() int {
	return 6
}

func (r *CredentialsIsolatedRule) Remediation() string {
	return "Move credentials out of the assistant config dir and strip any API keys pasted into instruction files; use a secret manager or environment variables."
}

func (r *CredentialsIsolatedRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerCredentialsFile) {
		return rules.Fail("plaintext credentials file present in the assistant config dir")
	}
	if hits := secretTokenPattern.FindAllString(in.Instructions, -1); len(hits) > 0 {
		return rules.Failf("%d secret-like token(s) found in instruction text", len(hits))
	}
	return rules.Pass("no credentials file and no secret-like tokens in instruction text")
}

func init() {
	rules.Register(&CredentialsIsolatedRule{})
}
