package gate

import (
	"testing"

	"github.com/hupe1980/agentgate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_UnknownGateAutoPasses(t *testing.T) {
	verdict := Validate("definitely_not_registered", map[string]any{})

	assert.True(t, verdict.Passed)
	assert.Equal(t, 1.0, verdict.Score)
	assert.Equal(t, DefaultThreshold, verdict.Threshold)
	assert.False(t, verdict.Blocking)
	assert.Contains(t, verdict.Feedback, "auto-pass")
	assert.Empty(t, verdict.Suggestions)
}

func TestLookup(t *testing.T) {
	assert.NotNil(t, Lookup("input_clarity"))
	assert.NotNil(t, Lookup("no_regressions"))
	assert.Nil(t, Lookup("input-clarity"))
	assert.Nil(t, Lookup(""))
}

func TestNames_CoversAllRoles(t *testing.T) {
	names := Names()
	require.Len(t, names, 13)
	assert.IsType(t, []string{}, names)
	// Sorted output keeps CLI help stable.
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

// extremeData loads every indicator key with out-of-range values so the
// clamp property can be checked across the whole registry.
func extremeData(sign float64) map[string]any {
	big := sign * 1e9
	return map[string]any{
		"session_id": "sess-clamp",
		"agent_type": "reviewer",
		"phase":      "any",
		"data": map[string]any{
			"query":            "how can we implement a test for everything in the architecture",
			"sources_examined": big,
			"files_read":       big,
			"web_sources":      big,
			"patterns_found":   big,
			"findings":         []any{"a", "b", "c", "d"},
			"recommendations":  []any{"r"},
			"trade_offs":       []any{"t"},
			"confidence":       big,
			"task":             "a very long implementation task description",
			"acceptance_criteria": []any{
				"one", "two", "three", "four",
			},
			"scope":      map[string]any{"files": []any{"x"}},
			"edge_cases": []any{"nil"},
			"quality_checks": map[string]any{
				"typescript_types": true, "error_handling": true,
				"no_debug_code": true, "follows_patterns": true,
				"comments_explain_why": true,
			},
			"tests_added":      big,
			"coverage_percent": big,
			"test_types": map[string]any{
				"happy_path": true, "edge_cases": true, "error_handling": true,
			},
			"tests_run":    big,
			"tests_passed": -big,
			"tests_failed": big,
			"dimensions_reviewed": map[string]any{
				"correctness": true, "security": true, "performance": true,
				"maintainability": true, "test_coverage": true,
			},
			"security_checks": map[string]any{
				"input_validation": true, "output_encoding": true,
				"auth_checks": true, "no_data_exposure": true,
				"injection_prevention": true,
			},
			"question":         "should we adopt approach A or approach B for this",
			"options":          []any{"a", "b"},
			"constraints":      []any{"c"},
			"success_criteria": []any{"s"},
			"perspectives": map[string]any{
				"developer_experience": true, "architecture": true,
				"user_impact": true, "resource_cost": true,
				"security": true, "time_horizon": true,
			},
			"weights_assigned": true,
			"recommendation": map[string]any{
				"confidence": big,
				"rationale":  "a rationale that is definitely longer than fifty characters in total",
			},
			"dissenting_view": "the other option is cheaper",
			"matches": []any{
				map[string]any{"relevance": big},
				map[string]any{"relevance": big},
			},
			"top_relevance": big,
		},
	}
}

func TestValidate_ScoreAlwaysClamped(t *testing.T) {
	for _, sign := range []float64{1, -1} {
		raw := extremeData(sign)
		for _, name := range Names() {
			verdict := Validate(name, raw)
			assert.GreaterOrEqual(t, verdict.Score, 0.0, "gate %s sign %v", name, sign)
			assert.LessOrEqual(t, verdict.Score, 1.0, "gate %s sign %v", name, sign)
			if verdict.Blocking {
				assert.False(t, verdict.Passed, "gate %s: blocking verdict must not pass", name)
			}
		}
	}
}

func TestValidate_Deterministic(t *testing.T) {
	raw := map[string]any{
		"data": map[string]any{
			"dimensions_reviewed": map[string]any{"correctness": true},
		},
	}
	first := Validate("review_completeness", raw)
	for i := 0; i < 25; i++ {
		assert.Equal(t, first, Validate("review_completeness", raw))
	}
}

func TestValidateContext(t *testing.T) {
	ctx := core.GateContext{
		SessionID: "sess-1",
		AgentType: core.AgentImplementer,
		Phase:     "verification",
		Data: core.Data{
			"tests_run": float64(10), "tests_passed": float64(10), "tests_failed": float64(0),
		},
	}
	verdict := ValidateContext("no_regressions", ctx)
	assert.True(t, verdict.Passed)

	verdict = ValidateContext("ghost_gate", ctx)
	assert.True(t, verdict.Passed)
	assert.Equal(t, 1.0, verdict.Score)
}
