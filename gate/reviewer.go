package gate

import (
	"fmt"

	"github.com/hupe1980/agentgate/core"
)

// reviewDimensions are the weighted review dimensions checked by the
// review_completeness gate, in canonical order.
var reviewDimensions = []weighted{
	{"correctness", 0.25},
	{"security", 0.25},
	{"performance", 0.20},
	{"maintainability", 0.15},
	{"test_coverage", 0.15},
}

// securityItems are the weighted checks applied by the security_check gate,
// in canonical order.
var securityItems = []weighted{
	{"input_validation", 0.25},
	{"output_encoding", 0.2},
	{"auth_checks", 0.25},
	{"no_data_exposure", 0.15},
	{"injection_prevention", 0.15},
}

// reviewCompleteness validates that a code review covered every dimension:
// correctness, security, performance, maintainability and test coverage.
func reviewCompleteness(ctx core.GateContext) core.GateVerdict {
	dimensions := ctx.Data.Map("dimensions_reviewed")

	var score float64
	var suggestions []string

	for _, dim := range reviewDimensions {
		if truthy(dimensions[dim.key]) {
			score += dim.weight
		} else {
			suggestions = append(suggestions, fmt.Sprintf("Review %s dimension", dim.key))
		}
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	reviewed := 0
	for _, v := range dimensions {
		if truthy(v) {
			reviewed++
		}
	}

	return core.GateVerdict{
		GateName:  "review_completeness",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Review completeness: %d/%d dimensions",
			reviewed, len(reviewDimensions)) +
			pick(passed, " - Comprehensive review", " - Incomplete review"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    false,
	}
}

// securityCheck validates security-sensitive review items under a raised
// threshold. A failed security gate always blocks: security never silently
// proceeds.
func securityCheck(ctx core.GateContext) core.GateVerdict {
	const threshold = 0.9

	checks := ctx.Data.Map("security_checks")

	var score float64
	var suggestions []string

	for _, item := range securityItems {
		if truthy(checks[item.key]) {
			score += item.weight
		} else {
			suggestions = append(suggestions, "Verify "+humanize(item.key))
		}
	}

	score = core.ClampScore(score)
	passed := score >= threshold

	return core.GateVerdict{
		GateName:  "security_check",
		Passed:    passed,
		Score:     score,
		Threshold: threshold,
		Feedback: fmt.Sprintf("Security score: %.2f", score) +
			pick(passed, " - Security standards met", " - Security concerns found"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    !passed,
	}
}
