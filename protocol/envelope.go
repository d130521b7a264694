package protocol

import (
	"time"

	"github.com/hupe1980/agentgate/core"
)

// HookEventType is the routing category the dashboard uses to dispatch a
// delivered envelope.
type HookEventType string

const (
	// HookProtocolEvent routes agent phase transitions with confidence.
	HookProtocolEvent HookEventType = "ProtocolEvent"
	// HookQualityGate routes gate validation results.
	HookQualityGate HookEventType = "QualityGate"
	// HookAgentHandoff routes inter-agent coordination records.
	HookAgentHandoff HookEventType = "AgentHandoff"
	// HookMemoryOperation routes memory keeper store/recall operations.
	HookMemoryOperation HookEventType = "MemoryOperation"
)

// Envelope is the versioned wire object carrying a payload to the dashboard.
// It exists only for the duration of one transport attempt.
type Envelope struct {
	SourceApp     string        `json:"source_app"`
	SessionID     string        `json:"session_id"`
	HookEventType HookEventType `json:"hook_event_type"`
	Timestamp     string        `json:"timestamp"`
	Payload       any           `json:"payload"`
}

// NewEnvelope wraps a payload for delivery, stamping the current UTC time in
// ISO-8601 form.
func NewEnvelope(sourceApp, sessionID string, hookType HookEventType, payload any) Envelope {
	return Envelope{
		SourceApp:     sourceApp,
		SessionID:     sessionID,
		HookEventType: hookType,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Payload:       payload,
	}
}

// VerdictPayload is the envelope payload for a gate verdict emitted directly
// from the validation engine: the verdict's wire fields plus the emitting
// agent role.
type VerdictPayload struct {
	AgentType core.AgentType `json:"agent_type"`
	core.GateVerdict
}

// NewVerdictEnvelope wraps a gate verdict for delivery under the QualityGate
// routing category.
func NewVerdictEnvelope(sourceApp, sessionID string, agent core.AgentType, verdict core.GateVerdict) Envelope {
	return NewEnvelope(sourceApp, sessionID, HookQualityGate, VerdictPayload{
		AgentType:   agent,
		GateVerdict: verdict,
	})
}
