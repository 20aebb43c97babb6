package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type GitignorePresentRule struct{}

func (r *GitignorePresentRule) ID() string {
	return "hygiene-gitignore-present"
}

func (r *GitignorePresentRule) Category() rules.Category {
	return rules.CategoryHygiene
}

func (r *GitignorePresentRule) Question() string {
	return "The project has a .gitignore"
}

func (r *GitignorePresentRule) Weight() int {
	return 5
}

func (r *GitignorePresentRule) Remediation() string {
	return "Add a .gitignore at the project root so the assistant never stages build output, caches, or local secrets."
}

func (r *GitignorePresentRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerGitignore) {
		return rules.Pass(".gitignore present at project root")
	}
	return rules.Fail("no .gitignore at project root")
}

func init() {
	rules.Register(&GitignorePresentRule{})
}
