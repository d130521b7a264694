package testutil

import "github.com/hupe1980/agentgate/core"

// ContextBuilder provides a fluent helper for constructing gate contexts in
// tests. Example:
//
//	ctx := NewContextBuilder().Agent(core.AgentImplementer).Set("task_description", "add retries").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type ContextBuilder struct {
	sessionID string
	agent     core.AgentType
	phase     string
	data      core.Data
	history   []map[string]any
}

// NewContextBuilder creates a builder with default session "session-test".
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{
		sessionID: "session-test",
		agent:     core.AgentImplementer,
		phase:     "execution",
		data:      core.Data{},
	}
}

// Session sets the session id (chainable).
func (b *ContextBuilder) Session(id string) *ContextBuilder { b.sessionID = id; return b }

// Agent sets the agent role (chainable).
func (b *ContextBuilder) Agent(a core.AgentType) *ContextBuilder { b.agent = a; return b }

// Phase sets the workflow phase (chainable).
func (b *ContextBuilder) Phase(p string) *ContextBuilder { b.phase = p; return b }

// Set stores a key/value pair in the gate-specific data (chainable).
func (b *ContextBuilder) Set(key string, value any) *ContextBuilder {
	b.data[key] = value
	return b
}

// History appends prior gate outcomes (chainable).
func (b *ContextBuilder) History(entries ...map[string]any) *ContextBuilder {
	b.history = append(b.history, entries...)
	return b
}

// Build constructs the core.GateContext value.
func (b *ContextBuilder) Build() core.GateContext {
	return core.GateContext{
		SessionID: b.sessionID,
		AgentType: b.agent,
		Phase:     b.phase,
		Data:      b.data,
		History:   b.history,
	}
}

// BuildRaw constructs the raw map form the assembly path accepts.
func (b *ContextBuilder) BuildRaw() map[string]any {
	data := map[string]any{}
	for k, v := range b.data {
		data[k] = v
	}
	return map[string]any{
		"session_id": b.sessionID,
		"agent_type": string(b.agent),
		"phase":      b.phase,
		"data":       data,
	}
}
