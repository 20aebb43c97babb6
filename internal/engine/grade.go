package engine

// Grade is the qualitative band assigned from the overall percent.
type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeNeedsWork Grade = "Needs Work"
	GradeCritical  Grade = "Critical"
)

// PassingPercent is the gate for exit code 0.
const PassingPercent = 60

// bands is the grade threshold table: evaluated top-down, lower bound
// inclusive, first match wins. The final band catches everything.
var bands = []struct {
	min   int
	grade Grade
}{
	{80, GradeExcellent},
	{60, GradeGood},
	{35, GradeNeedsWork},
	{0, GradeCritical},
}

// GradeFor maps an overall percent to its band.
func GradeFor(percent int) Grade {
	for _, b := range bands {
		if percent >= b.min {
			return b.grade
		}
	}
	return GradeCritical
}

// ExitCode implements the pass/fail gate contract:
// 0 = overall percent at or above PassingPercent
// 1 = below
func ExitCode(r *Report) int {
	if r != nil && r.Percent >= PassingPercent {
		return 0
	}
	return 1
}
