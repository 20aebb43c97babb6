package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type TaskTrackingRule struct{}

func (r *TaskTrackingRule) ID() string {
	return "mission-task-tracking"
}

func (r *TaskTrackingRule) Category() rules.Category {
	return rules.CategoryMission
}

func (r *TaskTrackingRule) Question() string {
	return "Work is tracked in a task file or instruction text"
}

func (r *TaskTrackingRule) Weight() int {
	return 4
}

func (r *TaskTrackingRule) Remediation() string {
	return "Keep a TODO.md or TASKS.md at the project root (or describe the task workflow in the instruction file)."
}

func (r *TaskTrackingRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerTaskFile) {
		return rules.Pass("task file present at project root")
	}
	if kw, ok := in.InstructionsContainAny("todo", "backlog"); ok {
		return rules.Passf("instruction text references task tracking (%q)", kw)
	}
	return rules.Fail("no task file and no task-tracking keywords in instruction text")
}

func init() {
	rules.Register(&TaskTrackingRule{})
}
