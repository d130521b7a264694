package protocol

import (
	"encoding/json"
	"testing"

	"github.com/hupe1980/agentgate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventKind(t *testing.T) {
	for _, k := range EventKinds {
		parsed, err := ParseEventKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseEventKind("heartbeat")
	assert.Error(t, err)
}

func TestEventKind_HookEventType(t *testing.T) {
	assert.Equal(t, HookProtocolEvent, KindSpawn.HookEventType())
	assert.Equal(t, HookProtocolEvent, KindProgress.HookEventType())
	assert.Equal(t, HookQualityGate, KindGate.HookEventType())
	assert.Equal(t, HookProtocolEvent, KindComplete.HookEventType())
	assert.Equal(t, HookAgentHandoff, KindHandoff.HookEventType())
	assert.Equal(t, HookProtocolEvent, KindError.HookEventType())
}

func TestNewSpawnEvent(t *testing.T) {
	ev, err := NewSpawnEvent(core.AgentResearcher, core.Data{
		"task":         "survey caching strategies",
		"scope":        map[string]any{"modules": []any{"cache"}},
		"requirements": []any{"compare at least 3 options"},
	})
	require.NoError(t, err)

	assert.Equal(t, KindSpawn, ev.EventType)
	assert.Equal(t, core.AgentResearcher, ev.AgentType)
	assert.Equal(t, Version, ev.ProtocolVersion)
	assert.Equal(t, "initialization", ev.Phase)
	assert.Equal(t, 1.0, ev.Confidence)
	assert.Equal(t, "survey caching strategies", ev.Context.Task)
}

func TestNewSpawnEvent_MissingRequired(t *testing.T) {
	_, err := NewSpawnEvent(core.AgentResearcher, core.Data{"task": "x"})
	assert.ErrorContains(t, err, "scope")

	_, err = NewSpawnEvent(core.AgentResearcher, core.Data{
		"scope":        map[string]any{},
		"requirements": []any{},
	})
	assert.ErrorContains(t, err, "task")
}

func TestNewProgressEvent_Defaults(t *testing.T) {
	ev := NewProgressEvent(core.AgentImplementer, core.Data{})

	assert.Equal(t, "execution", ev.Phase)
	assert.Equal(t, 0.5, ev.Confidence)
	assert.NotNil(t, ev.Context.CompletedSteps)
	assert.NotNil(t, ev.Context.RemainingSteps)
}

func TestNewProgressEvent_ExplicitFields(t *testing.T) {
	ev := NewProgressEvent(core.AgentImplementer, core.Data{
		"phase":            "synthesis",
		"confidence":       0.85,
		"completed_steps":  []any{"read sources"},
		"current_activity": "writing summary",
	})

	assert.Equal(t, "synthesis", ev.Phase)
	assert.Equal(t, 0.85, ev.Confidence)
	assert.Equal(t, []any{"read sources"}, ev.Context.CompletedSteps)
	assert.Equal(t, "writing summary", ev.Context.CurrentActivity)
}

func TestNewGateEvent_DerivesPassedFromScore(t *testing.T) {
	ev, err := NewGateEvent(core.AgentReviewer, core.Data{
		"gate_name": "security_check",
		"score":     0.85,
	})
	require.NoError(t, err)

	assert.Equal(t, "security_check", ev.GateName)
	assert.Equal(t, 0.85, ev.Score)
	assert.Equal(t, DefaultGateThreshold, ev.Threshold)
	assert.True(t, ev.Passed)
}

func TestNewGateEvent_ExplicitPassedWins(t *testing.T) {
	ev, err := NewGateEvent(core.AgentReviewer, core.Data{
		"score":  0.95,
		"passed": false,
	})
	require.NoError(t, err)
	assert.False(t, ev.Passed)
}

func TestNewGateEvent_RequiresScoreOrPassed(t *testing.T) {
	_, err := NewGateEvent(core.AgentReviewer, core.Data{"gate_name": "x"})
	assert.Error(t, err)
}

func TestNewGateEvent_UnknownGateName(t *testing.T) {
	ev, err := NewGateEvent(core.AgentReviewer, core.Data{"passed": true})
	require.NoError(t, err)
	assert.Equal(t, "unknown", ev.GateName)
}

func TestNewCompleteEvent_Defaults(t *testing.T) {
	ev := NewCompleteEvent(core.AgentImplementer, core.Data{})

	assert.Equal(t, "complete", ev.Phase)
	assert.Equal(t, 0.8, ev.Confidence)
	assert.Equal(t, 0, ev.Context.DurationMS)
	assert.NotNil(t, ev.Context.QualityMetrics)
}

func TestNewHandoffEvent(t *testing.T) {
	ev, err := NewHandoffEvent(core.AgentResearcher, core.Data{
		"to_agent": "implementer",
		"document": map[string]any{"findings": []any{"use LRU"}},
	})
	require.NoError(t, err)

	assert.Equal(t, core.AgentResearcher, ev.FromAgent)
	assert.Equal(t, "implementer", ev.ToAgent)
	assert.Equal(t, "task_delegation", ev.HandoffType)

	// The document field must be a serialized, re-parseable JSON string.
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(ev.Document), &doc))
	assert.Equal(t, []any{"use LRU"}, doc["findings"])

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(ev.Metadata), &meta))
	assert.Equal(t, 0.8, meta["confidence"])
	assert.Equal(t, "medium", meta["priority"])
}

func TestNewHandoffEvent_MissingTarget(t *testing.T) {
	_, err := NewHandoffEvent(core.AgentResearcher, core.Data{})
	assert.ErrorContains(t, err, "to_agent")
}

func TestNewErrorEvent_Defaults(t *testing.T) {
	ev := NewErrorEvent(core.AgentConsensus, core.Data{})

	assert.Equal(t, "unknown", ev.Phase)
	assert.Equal(t, 0.0, ev.Confidence)
	assert.Equal(t, "UNKNOWN", ev.Context.ErrorCode)
	assert.Equal(t, "An error occurred", ev.Context.ErrorMessage)
	assert.False(t, ev.Context.Recoverable)
	assert.NotNil(t, ev.Context.Suggestions)
}

func TestBuild_AllKinds(t *testing.T) {
	raw := map[string]any{
		"task":         "t",
		"scope":        map[string]any{},
		"requirements": []any{},
		"score":        0.9,
		"to_agent":     "reviewer",
	}
	for _, kind := range EventKinds {
		payload, err := Build(kind, core.AgentImplementer, raw)
		require.NoError(t, err, "kind %s", kind)
		require.NotNil(t, payload)

		// Every shape must serialize with the fixed version and its own tag.
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, string(kind), decoded["event_type"])
		assert.Equal(t, Version, decoded["protocol_version"])
	}

	_, err := Build("heartbeat", core.AgentImplementer, raw)
	assert.Error(t, err)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(func() {})) // unmarshalable
	n := EstimateTokens(map[string]any{"key": "some reasonably long value"})
	assert.Greater(t, n, 0)
}
