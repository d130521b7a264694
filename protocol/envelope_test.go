package protocol

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hupe1980/agentgate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope("agentgate", "sess-1", HookProtocolEvent, map[string]any{"k": "v"})

	assert.Equal(t, "agentgate", env.SourceApp)
	assert.Equal(t, "sess-1", env.SessionID)
	assert.Equal(t, HookProtocolEvent, env.HookEventType)

	ts, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

func TestNewVerdictEnvelope_WireShape(t *testing.T) {
	verdict := core.GateVerdict{
		GateName:    "no_regressions",
		Passed:      false,
		Score:       0.9,
		Threshold:   1.0,
		Feedback:    "Regression detected: 1 test(s) failed",
		Suggestions: []string{"Fix failing test: TestX"},
		Blocking:    true,
	}
	env := NewVerdictEnvelope("agentgate", "sess-2", core.AgentImplementer, verdict)

	assert.Equal(t, HookQualityGate, env.HookEventType)

	b, err := json.Marshal(env)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	payload, ok := decoded["payload"].(map[string]any)
	require.True(t, ok)
	// Verdict fields flatten alongside the agent role.
	assert.Equal(t, "implementer", payload["agent_type"])
	assert.Equal(t, "no_regressions", payload["gate_name"])
	assert.Equal(t, 0.9, payload["score"])
	assert.Equal(t, true, payload["blocking"])
}
