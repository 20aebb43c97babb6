package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type MemoryDirExistsRule struct{}

func (r *MemoryDirExistsRule) ID() string {
	return "memory-dir-exists"
}

func (r *MemoryDirExistsRule) Category() rules.Category {
	return rules.CategoryMemory
}

func (r *MemoryDirExistsRule) Question() string {
	return "A persistent memory directory exists"
}

func (r *MemoryDirExistsRule) Weight() int {
	return 5
}

func (r *MemoryDirExistsRule) Remediation() string {
	return "Create a memory/ directory under the assistant config dir so learnings persist across sessions."
}

func (r *MemoryDirExistsRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerMemoryDir) {
		return rules.Pass("memory directory present")
	}
	return rules.Fail("no memory directory under the assistant config dir")
}

func init() {
	rules.Register(&MemoryDirExistsRule{})
}
