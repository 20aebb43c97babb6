package checks

import (
	"testing"

	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

// The instruction-text rules share one shape: keyword heuristics over the
// lower-cased concatenated text.
func TestInstructionTextRules_Evaluate(t *testing.T) {
	tests := []struct {
		name         string
		rule         rules.Rule
		instructions string
		passed       bool
	}{
		{"present: pass on content", &InstructionsPresentRule{}, "be careful", true},
		{"present: fail on empty", &InstructionsPresentRule{}, "", false},
		{"present: fail on whitespace only", &InstructionsPresentRule{}, "  \n\t ", false},

		{"build-test: pass on test and make", &BuildTestDocumentedRule{}, "run make test before pushing", true},
		{"build-test: pass on test and go", &BuildTestDocumentedRule{}, "go test ./... must pass", true},
		{"build-test: fail on test only", &BuildTestDocumentedRule{}, "write a test for everything", false},
		{"build-test: fail without test", &BuildTestDocumentedRule{}, "make all", false},

		{"style: pass on lint", &StyleGuidanceRule{}, "run the linter", true},
		{"style: pass on convention", &StyleGuidanceRule{}, "follow naming conventions", true},
		{"style: fail without keywords", &StyleGuidanceRule{}, "do good work", false},

		{"commit: pass on commit", &CommitDisciplineRule{}, "commit small changes", true},
		{"commit: fail without commit", &CommitDisciplineRule{}, "push often", false},

		{"review: pass on pull request", &ReviewGateRule{}, "open a Pull Request for every change", true},
		{"review: pass on review", &ReviewGateRule{}, "wait for code review", true},
		{"review: fail without keywords", &ReviewGateRule{}, "merge freely", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs.New(nil, tt.instructions, nil)
			out := tt.rule.Evaluate(in)
			if out.Passed != tt.passed {
				t.Fatalf("want passed=%v, got %v (detail: %s)", tt.passed, out.Passed, out.Detail)
			}
			if out.Detail == "" {
				t.Fatal("detail must be non-empty")
			}
		})
	}
}
