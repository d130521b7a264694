package gate

import (
	"fmt"

	"github.com/hupe1980/agentgate/core"
)

// requirementsClarity validates that implementation requirements are clear:
// a well-defined task, explicit acceptance criteria and a bounded scope.
func requirementsClarity(ctx core.GateContext) core.GateVerdict {
	data := ctx.Data
	task := data.String("task")
	criteria := data.Len("acceptance_criteria")
	scope := data.Map("scope")

	var score float64
	var suggestions []string

	if len(task) > 10 {
		score += 0.3
	} else {
		suggestions = append(suggestions, "Provide clear task description")
	}

	if criteria >= 1 {
		score += 0.2
	}
	if criteria >= 3 {
		score += 0.15
	} else {
		suggestions = append(suggestions, "Define explicit acceptance criteria")
	}

	if truthy(scope["files"]) || truthy(scope["modules"]) {
		score += 0.2
	} else {
		suggestions = append(suggestions, "Identify files/modules in scope")
	}

	if truthy(data["edge_cases"]) {
		score += 0.15
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	return core.GateVerdict{
		GateName:  "requirements_clarity",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Requirements clarity: %d criteria defined", criteria) +
			pick(passed, " - Ready to implement", " - Needs clarification"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    !passed && score < 0.6,
	}
}

// codeQuality validates implementation quality flags reported by the agent:
// type coverage, error handling, leftover debug code and pattern adherence.
func codeQuality(ctx core.GateContext) core.GateVerdict {
	checks := ctx.Data.Map("quality_checks")

	var score float64
	var suggestions []string

	if checks.Bool("typescript_types", false) {
		score += 0.25
	} else {
		suggestions = append(suggestions, "Add comprehensive TypeScript types")
	}

	if checks.Bool("error_handling", false) {
		score += 0.25
	} else {
		suggestions = append(suggestions, "Add error handling for edge cases")
	}

	// Absence of debug code is assumed unless explicitly reported otherwise.
	if checks.Bool("no_debug_code", true) {
		score += 0.15
	} else {
		suggestions = append(suggestions, "Remove console.log and debug statements")
	}

	if checks.Bool("follows_patterns", false) {
		score += 0.2
	} else {
		suggestions = append(suggestions, "Ensure code follows existing project patterns")
	}

	if checks.Bool("comments_explain_why", false) {
		score += 0.15
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	return core.GateVerdict{
		GateName:  "code_quality",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Code quality score: %.2f", score) +
			pick(passed, " - Quality standards met", " - Needs improvement"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    !passed && score < 0.6,
	}
}

// testCoverage validates that new functionality is covered by tests across
// the happy path, edge cases and error scenarios.
func testCoverage(ctx core.GateContext) core.GateVerdict {
	data := ctx.Data
	testsAdded := data.Int("tests_added")
	coverage := data.Int("coverage_percent")
	testTypes := data.Map("test_types")

	var score float64
	var suggestions []string

	if testsAdded >= 1 {
		score += 0.25
	}
	if testsAdded >= 3 {
		score += 0.15
	} else {
		suggestions = append(suggestions, "Add at least 3 tests for new functionality")
	}

	switch {
	case coverage >= 80:
		score += 0.25
	case coverage >= 60:
		score += 0.15
		suggestions = append(suggestions, "Increase coverage to 80%+")
	default:
		suggestions = append(suggestions,
			fmt.Sprintf("Test coverage (%d%%) below 60%% threshold", coverage))
	}

	if truthy(testTypes["happy_path"]) {
		score += 0.15
	} else {
		suggestions = append(suggestions, "Add happy path tests")
	}
	if truthy(testTypes["edge_cases"]) {
		score += 0.1
	}
	if truthy(testTypes["error_handling"]) {
		score += 0.1
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	return core.GateVerdict{
		GateName:  "test_coverage",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Test coverage: %d tests, %d%% coverage", testsAdded, coverage) +
			pick(passed, " - Well tested", " - Needs more tests"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    false,
	}
}

// noRegressions validates that the change does not break existing tests.
// This gate requires a 100% pass rate: running zero tests or failing any
// test is a blocking failure.
func noRegressions(ctx core.GateContext) core.GateVerdict {
	data := ctx.Data
	testsRun := data.Int("tests_run")
	testsPassed := data.Int("tests_passed")
	testsFailed := data.Int("tests_failed")

	if testsRun == 0 {
		return core.GateVerdict{
			GateName:    "no_regressions",
			Passed:      false,
			Score:       0.0,
			Threshold:   1.0,
			Feedback:    "No tests run - cannot verify regressions",
			Suggestions: []string{"Run test suite before completion"},
			Blocking:    true,
		}
	}

	if testsFailed > 0 {
		passRate := core.ClampScore(float64(testsPassed) / float64(testsRun))
		failures := data.Strings("new_failures")
		if len(failures) > 3 {
			failures = failures[:3]
		}
		suggestions := make([]string, 0, len(failures))
		for _, f := range failures {
			suggestions = append(suggestions, "Fix failing test: "+f)
		}
		return core.GateVerdict{
			GateName:    "no_regressions",
			Passed:      false,
			Score:       passRate,
			Threshold:   1.0,
			Feedback:    fmt.Sprintf("Regression detected: %d test(s) failed", testsFailed),
			Suggestions: suggestions,
			Blocking:    true,
		}
	}

	return core.GateVerdict{
		GateName:    "no_regressions",
		Passed:      true,
		Score:       1.0,
		Threshold:   1.0,
		Feedback:    fmt.Sprintf("All %d tests pass - no regressions", testsRun),
		Suggestions: []string{},
		Blocking:    false,
	}
}
