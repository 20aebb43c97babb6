package output

import (
	"bytes"
	"strings"
	"testing"

	"agentmedic/internal/engine"
	"agentmedic/internal/rules"
)

func sampleReport() *engine.Report {
	return &engine.Report{
		Earned:  13,
		Total:   25,
		Percent: 52,
		Grade:   engine.GradeNeedsWork,
		Categories: []engine.CategoryScore{
			{Category: rules.CategorySafety, Earned: 8, Total: 20, Percent: 40},
			{Category: rules.CategoryHooks, Earned: 5, Total: 5, Percent: 100},
		},
		Results: []engine.CheckResult{
			{
				ID: "safety-a", Category: rules.CategorySafety,
				Question: "Dangerous commands are screened", Weight: 8,
				Passed: true, Detail: "hook on PreToolUse mentions \"block\"", Points: 8,
				Remediation: "not shown when passed",
			},
			{
				ID: "safety-b", Category: rules.CategorySafety,
				Question: "Instructions warn about protected branches", Weight: 12,
				Passed: false, Detail: "no branch-protection keywords",
				Remediation: "Add a protected-branches note to the instruction file.",
			},
			{
				ID: "hooks-a", Category: rules.CategoryHooks,
				Question: "Hooks are configured", Weight: 5,
				Passed: true, Detail: "1 hook entry configured", Points: 5,
			},
		},
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, sampleReport()); err != nil {
		t.Fatalf("RenderText error: %v", err)
	}
	out := buf.String()

	// Category groups in registry order.
	if strings.Index(out, "Safety") > strings.Index(out, "Hooks") {
		t.Fatal("Safety must render before Hooks")
	}
	for _, want := range []string{
		"✓ Dangerous commands are screened (8)",
		"✗ Instructions warn about protected branches (12)",
		"no branch-protection keywords",
		"8/20 (40%)",
		"5/5 (100%)",
		"Top fixes",
		"1. (12 pts) Instructions warn about protected branches",
		"Add a protected-branches note to the instruction file.",
		"Score: 13/25 (52%) [Needs Work]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
	// Passed checks never show remediation text.
	if strings.Contains(out, "not shown when passed") {
		t.Error("remediation for a passed check leaked into text output")
	}
}

func TestRenderText_TopFixesCapped(t *testing.T) {
	report := &engine.Report{
		Grade: engine.GradeCritical,
		Categories: []engine.CategoryScore{
			{Category: rules.CategorySafety, Total: 20},
		},
	}
	for i := 0; i < 5; i++ {
		report.Results = append(report.Results, engine.CheckResult{
			ID: string(rune('a' + i)), Category: rules.CategorySafety,
			Question: "q", Weight: 4, Detail: "d", Remediation: "r",
		})
	}

	var buf bytes.Buffer
	if err := RenderText(&buf, report); err != nil {
		t.Fatalf("RenderText error: %v", err)
	}
	if strings.Contains(buf.String(), "4. (") {
		t.Fatal("top fixes must be capped at three entries")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		earned, total int
		want          string
	}{
		{0, 10, "[░░░░░░░░░░]"},
		{10, 10, "[██████████]"},
		{5, 10, "[█████░░░░░]"},
		{1, 3, "[███░░░░░░░]"},
		{0, 0, "[░░░░░░░░░░]"},
	}
	for _, tt := range tests {
		if got := bar(tt.earned, tt.total); got != tt.want {
			t.Errorf("bar(%d, %d) = %s, want %s", tt.earned, tt.total, got, tt.want)
		}
	}
}
