package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type CommitDisciplineRule struct{}

func (r *CommitDisciplineRule) ID() string {
	return "workflow-commit-discipline"
}

func (r *CommitDisciplineRule) Category() rules.Category {
	return rules.CategoryWorkflow
}

func (r *CommitDisciplineRule) Question() string {
	return "Commit conventions are documented"
}

func (r *CommitDisciplineRule) Weight() int {
	return 5
}

func (r *CommitDisciplineRule) Remediation() string {
	return "Document commit expectations (message format, when to commit, what never to commit) in the instruction file."
}

func (r *CommitDisciplineRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.InstructionsContain("commit") {
		return rules.Pass("instruction text covers committing")
	}
	if in.Instructions == "" {
		return rules.Fail("no instruction files found")
	}
	return rules.Fail("instruction text never mentions commits")
}

func init() {
	rules.Register(&CommitDisciplineRule{})
}
