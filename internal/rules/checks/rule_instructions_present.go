package checks

import (
	"strings"

	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type InstructionsPresentRule struct{}

func (r *InstructionsPresentRule) ID() string {
	return "instructions-present"
}

func (r *InstructionsPresentRule) Category() rules.Category {
	return rules.CategoryInstructions
}

func (r *InstructionsPresentRule) Question() string {
	return "An instruction file exists and has content"
}

func (r *InstructionsPresentRule) Weight() int {
	return 5
}

func (r *InstructionsPresentRule) Remediation() string {
	return "Create a CLAUDE.md or AGENTS.md at the project root describing the project, its commands, and its conventions."
}

func (r *InstructionsPresentRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	text := strings.TrimSpace(in.Instructions)
	if text == "" {
		return rules.Fail("no instruction files found at any known location")
	}
	return rules.Passf("instruction text present (%d characters)", len(text))
}

func init() {
	rules.Register(&InstructionsPresentRule{})
}
