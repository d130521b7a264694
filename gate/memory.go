package gate

import (
	"fmt"
	"math"

	"github.com/hupe1980/agentgate/core"
)

// memoryRelevance validates the relevance of retrieved memories under a
// lower threshold suited to fuzzy matching. The top match relevance is the
// base score; multiple highly relevant matches earn a capped bonus.
func memoryRelevance(ctx core.GateContext) core.GateVerdict {
	const threshold = 0.7

	data := ctx.Data
	matches := data.Slice("matches")
	topRelevance := data.Float("top_relevance")

	if len(matches) == 0 {
		return core.GateVerdict{
			GateName:  "memory_relevance",
			Passed:    false,
			Score:     0.0,
			Threshold: threshold,
			Feedback:  "No matching memories found",
			Suggestions: []string{
				"Broaden search terms",
				"Check alternative categories",
			},
			Blocking: false,
		}
	}

	score := topRelevance

	highRelevance := 0
	for _, m := range matches {
		if rec, ok := m.(map[string]any); ok {
			if core.Data(rec).Float("relevance") >= 0.7 {
				highRelevance++
			}
		}
	}
	if highRelevance >= 2 {
		score = math.Min(1.0, score+0.1)
	}

	score = core.ClampScore(score)
	passed := score >= threshold

	var suggestions []string
	if !passed {
		suggestions = append(suggestions, "Consider alternative search strategies")
	}

	return core.GateVerdict{
		GateName:  "memory_relevance",
		Passed:    passed,
		Score:     score,
		Threshold: threshold,
		Feedback: fmt.Sprintf("Memory relevance: %d matches, top relevance %.2f",
			len(matches), topRelevance) +
			pick(passed, " - Good matches", " - Low relevance"),
		Suggestions: failedOnly(passed, suggestions),
		Blocking:    false,
	}
}
