package checks

import (
	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

type MissionFileExistsRule struct{}

func (r *MissionFileExistsRule) ID() string {
	return "mission-file-exists"
}

func (r *MissionFileExistsRule) Category() rules.Category {
	return rules.CategoryMission
}

func (r *MissionFileExistsRule) Question() string {
	return "A mission file states what the project is for"
}

func (r *MissionFileExistsRule) Weight() int {
	return 6
}

func (r *MissionFileExistsRule) Remediation() string {
	return "Add a MISSION.md at the project root; a stated mission keeps long-running assistant work pointed in one direction."
}

func (r *MissionFileExistsRule) Evaluate(in *inputs.Inputs) rules.Outcome {
	if in.Marker(inputs.MarkerMissionFile) {
		return rules.Pass("mission file present at project root")
	}
	return rules.Fail("no MISSION.md or mission.md at project root")
}

func init() {
	rules.Register(&MissionFileExistsRule{})
}
