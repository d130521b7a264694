package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewCompleteness_AllDimensions(t *testing.T) {
	verdict := reviewCompleteness(dataCtx(map[string]any{
		"dimensions_reviewed": map[string]any{
			"correctness":     true,
			"security":        true,
			"performance":     true,
			"maintainability": true,
			"test_coverage":   true,
		},
	}))

	assert.True(t, verdict.Passed)
	assert.InDelta(t, 1.0, verdict.Score, 1e-9)
	assert.False(t, verdict.Blocking)
	assert.Empty(t, verdict.Suggestions)
	assert.Contains(t, verdict.Feedback, "5/5 dimensions")
}

func TestReviewCompleteness_Partial(t *testing.T) {
	verdict := reviewCompleteness(dataCtx(map[string]any{
		"dimensions_reviewed": map[string]any{
			"correctness": true,
			"security":    true,
		},
	}))

	assert.False(t, verdict.Passed)
	assert.InDelta(t, 0.5, verdict.Score, 1e-9)
	assert.False(t, verdict.Blocking)
	assert.Equal(t, []string{
		"Review performance dimension",
		"Review maintainability dimension",
		"Review test_coverage dimension",
	}, verdict.Suggestions)
	assert.Contains(t, verdict.Feedback, "2/5 dimensions")
}

func TestSecurityCheck_AllVerified(t *testing.T) {
	verdict := securityCheck(dataCtx(map[string]any{
		"security_checks": map[string]any{
			"input_validation":     true,
			"output_encoding":      true,
			"auth_checks":          true,
			"no_data_exposure":     true,
			"injection_prevention": true,
		},
	}))

	assert.True(t, verdict.Passed)
	assert.InDelta(t, 1.0, verdict.Score, 1e-9)
	assert.Equal(t, 0.9, verdict.Threshold)
	assert.False(t, verdict.Blocking)
}

func TestSecurityCheck_FailureAlwaysBlocks(t *testing.T) {
	// 0.25+0.2+0.25+0.15 = 0.85, below the raised 0.9 threshold.
	verdict := securityCheck(dataCtx(map[string]any{
		"security_checks": map[string]any{
			"input_validation": true,
			"output_encoding":  true,
			"auth_checks":      true,
			"no_data_exposure": true,
		},
	}))

	assert.False(t, verdict.Passed)
	assert.InDelta(t, 0.85, verdict.Score, 1e-9)
	assert.True(t, verdict.Blocking)
	assert.Equal(t, []string{"Verify injection prevention"}, verdict.Suggestions)
}

func TestSecurityCheck_NothingVerified(t *testing.T) {
	verdict := securityCheck(dataCtx(map[string]any{}))

	assert.False(t, verdict.Passed)
	assert.Equal(t, 0.0, verdict.Score)
	assert.True(t, verdict.Blocking)
	assert.Equal(t, []string{
		"Verify input validation",
		"Verify output encoding",
		"Verify auth checks",
		"Verify no data exposure",
		"Verify injection prevention",
	}, verdict.Suggestions)
}
