package classify

import "strings"

// Outcome is the result of classifying a tool invocation. TestResult is nil
// when the invocation was not recognized as a test run or the output was
// inconclusive.
type Outcome struct {
	Success    bool
	TestResult *bool
}

// Classifier interprets a raw tool payload into an Outcome.
type Classifier interface {
	Classify(toolName, command, output string) Outcome
}

// errorMarkers are substrings whose presence in tool output suggests failure.
// Matching is case insensitive.
var errorMarkers = []string{
	"error:",
	"failed",
	"exception",
	"not found",
	"permission denied",
}

// testRunners are command fragments that identify a test invocation.
var testRunners = []string{
	"npm test",
	"jest",
	"vitest",
	"pytest",
	"cargo test",
	"go test",
}

// Heuristic is the default text scanning Classifier.
type Heuristic struct{}

// NewHeuristic returns a new Heuristic classifier.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Classify scans the output for error markers and, for shell commands that
// look like test runs, derives a pass/fail result from PASS/FAIL markers.
func (h *Heuristic) Classify(toolName, command, output string) Outcome {
	return Outcome{
		Success:    h.scanSuccess(output),
		TestResult: h.detectTestResult(toolName, command, output),
	}
}

func (h *Heuristic) scanSuccess(output string) bool {
	lower := strings.ToLower(output)

	for _, marker := range errorMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	return true
}

func (h *Heuristic) detectTestResult(toolName, command, output string) *bool {
	if toolName != "Bash" {
		return nil
	}

	isTest := false

	for _, runner := range testRunners {
		if strings.Contains(command, runner) {
			isTest = true
			break
		}
	}

	if !isTest {
		return nil
	}

	lower := strings.ToLower(output)
	hasPass := strings.Contains(output, "PASS") || strings.Contains(lower, "passed")
	hasFail := strings.Contains(output, "FAIL") || strings.Contains(lower, "failed")

	if hasPass && !hasFail {
		passed := true
		return &passed
	}

	if hasFail {
		passed := false
		return &passed
	}

	return nil
}

// ResolveSuccess combines a structured success signal with a heuristic one.
// The structured field always wins when present.
func ResolveSuccess(structured *bool, heuristic bool) bool {
	if structured != nil {
		return *structured
	}

	return heuristic
}
