package agentgate

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentgate/core"
	"github.com/hupe1980/agentgate/gate"
	"github.com/hupe1980/agentgate/internal/testutil"
	"github.com/hupe1980/agentgate/protocol"
)

// captureSender records envelopes instead of delivering them.
type captureSender struct {
	result    bool
	envelopes []protocol.Envelope
}

func (c *captureSender) Send(_ context.Context, env protocol.Envelope) bool {
	c.envelopes = append(c.envelopes, env)
	return c.result
}

func TestNewDefaults(t *testing.T) {
	g := New()

	assert.True(t, strings.HasPrefix(g.SessionID(), "session-"))
}

func TestValidate(t *testing.T) {
	g := New()

	raw := testutil.NewContextBuilder().
		Agent(core.AgentImplementer).
		Set("tests_run", 10).
		Set("tests_failed", 0).
		BuildRaw()

	verdict := g.Validate("no_regressions", raw)
	assert.True(t, verdict.Passed)
	assert.Equal(t, 1.0, verdict.Score)

	// Unknown gates auto-pass.
	verdict = g.Validate("nonexistent_gate", raw)
	assert.True(t, verdict.Passed)
}

func TestValidateAndEmit(t *testing.T) {
	sender := &captureSender{result: true}
	g := New(func(o *Options) {
		o.Sender = sender
		o.SourceApp = "demo-app"
		o.SessionID = "session-fixed"
	})

	raw := testutil.NewContextBuilder().
		Session("session-fixed").
		Agent(core.AgentResearcher).
		Set("query", "How should we implement the caching architecture for the new search api layer").
		BuildRaw()

	verdict, delivered := g.ValidateAndEmit(context.Background(), "input_clarity", raw)
	assert.True(t, verdict.Passed)
	assert.True(t, delivered)

	require.Len(t, sender.envelopes, 1)
	env := sender.envelopes[0]
	assert.Equal(t, "demo-app", env.SourceApp)
	assert.Equal(t, "session-fixed", env.SessionID)
	assert.Equal(t, protocol.HookQualityGate, env.HookEventType)

	payload, ok := env.Payload.(protocol.VerdictPayload)
	require.True(t, ok)
	assert.Equal(t, core.AgentResearcher, payload.AgentType)
	assert.Equal(t, "input_clarity", payload.GateName)
}

func TestValidateAndEmitTransportFailure(t *testing.T) {
	sender := &captureSender{result: false}
	g := New(func(o *Options) { o.Sender = sender })

	raw := testutil.NewContextBuilder().
		Agent(core.AgentImplementer).
		Set("tests_run", 10).
		Set("tests_failed", 0).
		BuildRaw()

	verdict, delivered := g.ValidateAndEmit(context.Background(), "no_regressions", raw)

	// The verdict stands even when delivery fails.
	assert.True(t, verdict.Passed)
	assert.False(t, delivered)
}

func TestEmit(t *testing.T) {
	sender := &captureSender{result: true}
	g := New(func(o *Options) { o.Sender = sender })

	ok := g.Emit(context.Background(), core.AgentResearcher, protocol.KindSpawn, map[string]any{
		"task":         "investigate cache strategy",
		"scope":        map[string]any{"files": []any{"docs/"}},
		"requirements": []any{"cover eviction"},
	})
	assert.True(t, ok)

	require.Len(t, sender.envelopes, 1)
	assert.Equal(t, protocol.HookProtocolEvent, sender.envelopes[0].HookEventType)
}

func TestEmitBuildFailure(t *testing.T) {
	sender := &captureSender{result: true}
	g := New(func(o *Options) { o.Sender = sender })

	// Spawn without a task never reaches the transport.
	ok := g.Emit(context.Background(), core.AgentResearcher, protocol.KindSpawn, map[string]any{})
	assert.False(t, ok)
	assert.Empty(t, sender.envelopes)
}

func TestConfidenceAction(t *testing.T) {
	g := New()

	assert.Equal(t, gate.ActionProceed, g.ConfidenceAction(0.9))
	assert.Equal(t, gate.ActionClarify, g.ConfidenceAction(0.7))
	assert.Equal(t, gate.ActionBlock, g.ConfidenceAction(0.3))
}
