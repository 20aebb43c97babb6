package rules

import "fmt"

func Pass(detail string) Outcome {
	return Outcome{Passed: true, Detail: detail}
}

func Passf(format string, args ...any) Outcome {
	return Outcome{Passed: true, Detail: fmt.Sprintf(format, args...)}
}

func Fail(detail string) Outcome {
	return Outcome{Passed: false, Detail: detail}
}

func Failf(format string, args ...any) Outcome {
	return Outcome{Passed: false, Detail: fmt.Sprintf(format, args...)}
}
