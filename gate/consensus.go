package gate

import (
	"fmt"
	"math"

	"github.com/hupe1980/agentgate/core"
)

// requiredPerspectives are the six analysis perspectives checked by the
// perspective_coverage gate, in canonical order.
var requiredPerspectives = []string{
	"developer_experience",
	"architecture",
	"user_impact",
	"resource_cost",
	"security",
	"time_horizon",
}

// decisionClarity validates that the decision question is well-framed: a
// specific question, identified options, documented constraints and defined
// success criteria.
func decisionClarity(ctx core.GateContext) core.GateVerdict {
	data := ctx.Data
	question := data.String("question")
	options := data.Len("options")
	constraints := data.Len("constraints")
	successCriteria := data.Len("success_criteria")

	var score float64
	var suggestions []string

	if len(question) > 20 {
		score += 0.3
	} else {
		suggestions = append(suggestions, "Provide a clear, specific decision question")
	}

	if options >= 2 {
		score += 0.25
	} else {
		suggestions = append(suggestions, "Identify at least 2 options to evaluate")
	}

	if constraints >= 1 {
		score += 0.2
	} else {
		suggestions = append(suggestions, "Document constraints affecting the decision")
	}

	if successCriteria >= 1 {
		score += 0.25
	} else {
		suggestions = append(suggestions, "Define what success looks like")
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	return core.GateVerdict{
		GateName:  "decision_clarity",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Decision framing: %d options, %d constraints",
			options, constraints) +
			pick(passed, " - Well-framed", " - Needs refinement"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    !passed && score < 0.6,
	}
}

// perspectiveCoverage validates that all six perspectives were analyzed.
// Each covered perspective contributes an equal share of a 0.9 sub-total; an
// explicit caller-supplied weighting earns a 0.1 bonus.
func perspectiveCoverage(ctx core.GateContext) core.GateVerdict {
	data := ctx.Data
	perspectives := data.Map("perspectives")

	var score float64
	var suggestions []string

	covered := 0
	for _, p := range requiredPerspectives {
		if truthy(perspectives[p]) {
			covered++
			score += 1.0 / 6.0 * 0.9
		} else {
			suggestions = append(suggestions, fmt.Sprintf("Analyze %s perspective", humanize(p)))
		}
	}

	if data.Bool("weights_assigned", false) {
		score += 0.1
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	return core.GateVerdict{
		GateName:  "perspective_coverage",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Perspective coverage: %d/6 perspectives analyzed", covered) +
			pick(passed, " - Comprehensive analysis", " - Missing perspectives"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    false,
	}
}

// decisionConfidence validates confidence in the final recommendation: a
// clear winner with rationale, and the strongest counter-argument
// acknowledged. The reported confidence is the base score; rationale and
// dissent each add a capped bonus.
func decisionConfidence(ctx core.GateContext) core.GateVerdict {
	data := ctx.Data
	recommendation := data.Map("recommendation")
	rationale := recommendation.String("rationale")
	dissentingView := data.String("dissenting_view")

	score := recommendation.Float("confidence")

	var suggestions []string

	if len(rationale) > 50 {
		score = math.Min(1.0, score+0.1)
	} else {
		suggestions = append(suggestions, "Provide detailed rationale for recommendation")
	}

	if dissentingView != "" {
		score = math.Min(1.0, score+0.05)
	} else {
		suggestions = append(suggestions, "Acknowledge strongest counter-argument")
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	level := "LOW"
	switch {
	case score >= 0.8:
		level = "HIGH"
	case score >= 0.6:
		level = "MEDIUM"
	}

	return core.GateVerdict{
		GateName:  "decision_confidence",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Decision confidence: %s (%.2f)", level, score) +
			pick(passed, " - Confident recommendation", " - Consider prototyping"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    false,
	}
}
