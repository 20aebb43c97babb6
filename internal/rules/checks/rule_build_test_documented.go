package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

var buildKeywords = []string{"build", "make", "npm", "cargo", "go "}

type BuildTestDocumentedRule struct{}

func (r *BuildTestDocumentedRule) ID() string {
	return "instructions-build-test"
}

func (r *BuildTestDocumentedRule) Category() rules.Category {
	return rules.CategoryInstructions
}

func (r *BuildTestDocumentedRule) Question() string {
	return "Build and test commands are documented"
}

func (r *BuildTestDocumentedRule) Weight() int {
	return 5
}

func (r *BuildTestDocumentedRule) Remediation() string {
	return "Document how to build and test the project in the instruction file; the assistant cannot verify its own changes without them."
}

func (r *BuildTestDocumentedRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if !in.InstructionsContain("test") {
		return rules.Fail("instruction text never mentions testing")
	}
	if kw, ok := in.InstructionsContainAny(buildKeywords...); ok {
		return rules.Passf("testing documented alongside build tooling (%q)", kw)
	}
	return rules.Fail("testing is mentioned but no build command appears in instruction text")
}

func init() {
	rules.Register(&BuildTestDocumentedRule{})
}
