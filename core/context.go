package core

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// AgentType identifies one of the fixed cooperating workflow roles.
type AgentType string

const (
	// AgentResearcher investigates a question and produces findings.
	AgentResearcher AgentType = "researcher"
	// AgentImplementer turns requirements into code changes.
	AgentImplementer AgentType = "implementer"
	// AgentReviewer audits changes for correctness and security.
	AgentReviewer AgentType = "reviewer"
	// AgentConsensus arbitrates between competing options.
	AgentConsensus AgentType = "consensus"
	// AgentMemoryKeeper stores and recalls cross-session knowledge.
	AgentMemoryKeeper AgentType = "memory-keeper"
)

// AgentTypes lists all known roles in canonical order.
var AgentTypes = []AgentType{
	AgentResearcher,
	AgentImplementer,
	AgentReviewer,
	AgentConsensus,
	AgentMemoryKeeper,
}

// IsValid reports whether the agent type is one of the known roles.
func (a AgentType) IsValid() bool {
	for _, t := range AgentTypes {
		if a == t {
			return true
		}
	}
	return false
}

// String returns the wire representation of the agent type.
func (a AgentType) String() string { return string(a) }

// Data is the loosely structured payload carried by a GateContext. Values
// originate from decoded JSON, so numbers arrive as float64 and nested
// objects as map[string]any. The typed accessors below concentrate all type
// coercion in one place; absent or mistyped keys yield zero values rather
// than errors.
type Data map[string]any

// String returns the string value for key, or "" when absent or mistyped.
func (d Data) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the numeric value for key as float64, accepting any of the
// numeric types JSON decoding or direct construction may produce.
func (d Data) Float(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Int returns the numeric value for key truncated to int.
func (d Data) Int(key string) int { return int(d.Float(key)) }

// Bool returns the boolean value for key, or def when absent or mistyped.
func (d Data) Bool(key string, def bool) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return def
}

// Has reports whether key is present with a non-nil value.
func (d Data) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// Slice returns the list value for key, or nil when absent or mistyped.
func (d Data) Slice(key string) []any {
	if v, ok := d[key].([]any); ok {
		return v
	}
	return nil
}

// Len returns the length of the list value for key (0 when absent).
func (d Data) Len(key string) int { return len(d.Slice(key)) }

// Strings returns the list value for key coerced to strings, skipping
// non-string elements.
func (d Data) Strings(key string) []string {
	raw := d.Slice(key)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Map returns the nested object value for key, or an empty Data when absent
// or mistyped so callers can chain accessors safely.
func (d Data) Map(key string) Data {
	switch v := d[key].(type) {
	case map[string]any:
		return Data(v)
	case Data:
		return v
	}
	return Data{}
}

// GateContext is the normalized input to a gate validator. It is constructed
// fresh per validation call, never mutated after construction and never
// persisted by the core.
type GateContext struct {
	SessionID string           `json:"session_id"`
	AgentType AgentType        `json:"agent_type"`
	Phase     string           `json:"phase"`
	Data      Data             `json:"data"`
	History   []map[string]any `json:"history,omitempty"`
}

// AssembleContext normalizes a raw, loosely structured record into a
// GateContext. Missing selector fields default to "unknown" so that an
// incomplete record degrades to a low-scoring validation rather than an
// error.
func AssembleContext(raw map[string]any) GateContext {
	d := Data(raw)
	ctx := GateContext{
		SessionID: d.String("session_id"),
		AgentType: AgentType(d.String("agent_type")),
		Phase:     d.String("phase"),
		Data:      d.Map("data"),
	}
	if ctx.SessionID == "" {
		ctx.SessionID = "unknown"
	}
	if ctx.AgentType == "" {
		ctx.AgentType = "unknown"
	}
	if ctx.Phase == "" {
		ctx.Phase = "unknown"
	}
	if hist, ok := raw["history"].([]any); ok {
		for _, h := range hist {
			if m, ok := h.(map[string]any); ok {
				ctx.History = append(ctx.History, m)
			}
		}
	}
	return ctx
}

// ParseContext reads a JSON context record from r. Malformed or empty input
// is recovered as an empty record; it is never surfaced as an error to the
// caller.
func ParseContext(r io.Reader) map[string]any {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil || raw == nil {
		return map[string]any{}
	}
	return raw
}

// NewID generates a new unique identifier.
//
// This function creates a UUID-based unique identifier that can be used for
// correlation of emitted envelopes and generated session identifiers.
func NewID() string { return uuid.NewString() }

// NewSessionID returns a timestamp-based session identifier used when no
// session id was supplied by the caller or the environment.
func NewSessionID(now time.Time) string {
	return "session-" + now.Format("20060102-150405")
}
