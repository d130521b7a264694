package gate

import (
	"fmt"
	"strings"

	"github.com/hupe1980/agentgate/core"
)

// questionMarkers and techIndicators are the fixed token sets used by the
// input_clarity gate. Matching is case-insensitive substring containment.
var (
	questionMarkers = []string{"how", "what", "why", "which", "when", "where", "can"}
	techIndicators  = []string{
		"implement", "architecture", "pattern", "performance",
		"security", "test", "api", "component", "database",
	}
)

// inputClarity validates that the research query is clear and well-defined:
// the query has substance, scope boundaries are identifiable and success
// criteria can be inferred.
func inputClarity(ctx core.GateContext) core.GateVerdict {
	query := ctx.Data.String("query")
	if query == "" {
		return core.GateVerdict{
			GateName:    "input_clarity",
			Passed:      false,
			Score:       0.0,
			Threshold:   DefaultThreshold,
			Feedback:    "No query provided",
			Suggestions: []string{"Provide a research question or topic"},
			Blocking:    true,
		}
	}

	var score float64
	var suggestions []string

	// Base score from word count (5-50 words ideal)
	wordCount := len(strings.Fields(query))
	if wordCount >= 5 {
		score += 0.3
	}
	if wordCount >= 10 {
		score += 0.2
	}
	if wordCount <= 100 { // Not too verbose
		score += 0.1
	}

	lower := strings.ToLower(query)

	if containsAny(lower, questionMarkers) {
		score += 0.2
	} else {
		suggestions = append(suggestions, "Consider framing as a question for clearer scope")
	}

	// Specific technical terms indicate a focused query.
	if containsAny(lower, techIndicators) {
		score += 0.2
	} else {
		suggestions = append(suggestions, "Include specific technical terms to narrow scope")
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	return core.GateVerdict{
		GateName:  "input_clarity",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Query clarity score: %.2f", score) +
			pick(passed, " - Passed", " - Needs clarification"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    !passed && score < 0.6,
	}
}

// sourceCoverage validates that research has examined sufficient sources with
// enough variety and depth. Slightly lower threshold than the default.
func sourceCoverage(ctx core.GateContext) core.GateVerdict {
	const threshold = 0.7

	data := ctx.Data
	sourcesExamined := data.Int("sources_examined")
	filesRead := data.Int("files_read")
	webSources := data.Int("web_sources")
	patternsFound := data.Int("patterns_found")

	var score float64
	var suggestions []string

	if sourcesExamined >= 3 {
		score += 0.3
	}
	if sourcesExamined >= 5 {
		score += 0.2
	}
	if sourcesExamined >= 10 {
		score += 0.1
	}

	// Source variety bonus
	if filesRead > 0 {
		score += 0.15
	} else {
		suggestions = append(suggestions, "Search codebase for relevant patterns")
	}
	if webSources > 0 {
		score += 0.1
	}

	// Patterns found indicates depth
	if patternsFound >= 2 {
		score += 0.15
	}

	score = core.ClampScore(score)
	passed := score >= threshold

	return core.GateVerdict{
		GateName:  "source_coverage",
		Passed:    passed,
		Score:     score,
		Threshold: threshold,
		Feedback: fmt.Sprintf("Source coverage: %d sources, %d files, %d web",
			sourcesExamined, filesRead, webSources) +
			pick(passed, " - Adequate", " - Needs more research"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    false,
	}
}

// synthesisQuality validates that research synthesis is complete and
// actionable: findings with evidence, recommendations, trade-offs and an
// assigned confidence level.
func synthesisQuality(ctx core.GateContext) core.GateVerdict {
	data := ctx.Data
	findings := data.Len("findings")
	recommendations := data.Len("recommendations")
	tradeOffs := data.Len("trade_offs")
	hasConfidence := data.Has("confidence")

	var score float64
	var suggestions []string

	if findings >= 1 {
		score += 0.2
	}
	if findings >= 3 {
		score += 0.15
	} else {
		suggestions = append(suggestions, "Document at least 3 key findings")
	}

	if recommendations >= 1 {
		score += 0.25
	} else {
		suggestions = append(suggestions, "Provide actionable recommendations")
	}

	if tradeOffs >= 1 {
		score += 0.2
	} else {
		suggestions = append(suggestions, "Analyze trade-offs between approaches")
	}

	if hasConfidence {
		score += 0.2
	} else {
		suggestions = append(suggestions, "Assign confidence level to recommendations")
	}

	score = core.ClampScore(score)
	passed := score >= DefaultThreshold

	return core.GateVerdict{
		GateName:  "synthesis_quality",
		Passed:    passed,
		Score:     score,
		Threshold: DefaultThreshold,
		Feedback: fmt.Sprintf("Synthesis quality: %d findings, %d recommendations",
			findings, recommendations) +
			pick(passed, " - Ready for handoff", " - Needs refinement"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    !passed && score < 0.6,
	}
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
