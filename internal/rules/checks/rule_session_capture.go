package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type SessionCaptureRule struct{}

func (r *SessionCaptureRule) ID() string {
	return "memory-session-capture"
}

func (r *SessionCaptureRule) Category() rules.Category {
	return rules.CategoryMemory
}

func (r *SessionCaptureRule) Question() string {
	return "Session transcripts are being captured"
}

func (r *SessionCaptureRule) Weight() int {
	return 5
}

func (r *SessionCaptureRule) Remediation() string {
	return "Enable session/transcript capture (a projects/ or sessions/ directory under the config dir); past sessions are the raw material for improving instructions."
}

func (r *SessionCaptureRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerSessions) {
		return rules.Pass("session capture directory present")
	}
	return rules.Fail("no session capture directory under the assistant config dir")
}

func init() {
	rules.Register(&SessionCaptureRule{})
}
