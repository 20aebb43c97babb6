package checks

import (
	"testing"

	"agentmedic/internal/inputs"
	"agentmedic/internal/rules"
)

// Marker-backed rules: existence flag in, pass/fail out.
func TestMarkerRules_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		rule    rules.Rule
		markers map[inputs.Marker]bool
		passed  bool
	}{
		{"memory dir present", &MemoryDirExistsRule{}, map[inputs.Marker]bool{inputs.MarkerMemoryDir: true}, true},
		{"memory dir absent", &MemoryDirExistsRule{}, nil, false},

		{"sessions present", &SessionCaptureRule{}, map[inputs.Marker]bool{inputs.MarkerSessions: true}, true},
		{"sessions absent", &SessionCaptureRule{}, nil, false},

		{"mission present", &MissionFileExistsRule{}, map[inputs.Marker]bool{inputs.MarkerMissionFile: true}, true},
		{"mission absent", &MissionFileExistsRule{}, nil, false},

		{"logs present", &LogDirExistsRule{}, map[inputs.Marker]bool{inputs.MarkerLogsDir: true}, true},
		{"logs absent", &LogDirExistsRule{}, nil, false},

		{"watchdog present", &WatchdogPresentRule{}, map[inputs.Marker]bool{inputs.MarkerWatchdog: true}, true},
		{"watchdog absent", &WatchdogPresentRule{}, nil, false},

		{"gitignore present", &GitignorePresentRule{}, map[inputs.Marker]bool{inputs.MarkerGitignore: true}, true},
		{"gitignore absent", &GitignorePresentRule{}, nil, false},

		// Inverted: the .env marker failing the check is the point.
		{"env file present fails", &EnvFileAbsentRule{}, map[inputs.Marker]bool{inputs.MarkerEnvFile: true}, false},
		{"env file absent passes", &EnvFileAbsentRule{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs.New(nil, "", tt.markers)
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

func TestTaskTrackingRule_Evaluate(t *testing.T) {
	rule := &TaskTrackingRule{}

	tests := []struct {
		name         string
		markers      map[inputs.Marker]bool
		instructions string
		passed       bool
	}{
		{"pass on task file", map[inputs.Marker]bool{inputs.MarkerTaskFile: true}, "", true},
		{"pass on todo keyword", nil, "keep the TODO list current", true},
		{"pass on backlog keyword", nil, "pull work from the backlog", true},
		{"fail with neither", nil, "just write code", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := inputs.New(nil, tt.instructions, tt.markers)
			out := rule.Evaluate(in)
			if out.Passed != tt.passed {
				t.Fatalf("want passed=%v, got %v (detail: %s)", tt.passed, out.Passed, out.Detail)
			}
		})
	}
}
