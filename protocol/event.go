package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/agentgate/core"
)

// Version is the protocol version stamped on every event payload.
const Version = "2.0"

// DefaultGateThreshold is applied to gate events that omit a threshold.
const DefaultGateThreshold = 0.8

// EventKind identifies one of the six event shapes.
type EventKind string

const (
	// KindSpawn announces a newly started agent with its task context.
	KindSpawn EventKind = "spawn"
	// KindProgress reports phase and step progress during execution.
	KindProgress EventKind = "progress"
	// KindGate reports a quality gate validation result.
	KindGate EventKind = "gate"
	// KindComplete announces agent completion with output metadata.
	KindComplete EventKind = "complete"
	// KindHandoff records delegation of work to another agent.
	KindHandoff EventKind = "handoff"
	// KindError reports a failure during agent execution.
	KindError EventKind = "error"
)

// EventKinds lists all event shapes in canonical order.
var EventKinds = []EventKind{KindSpawn, KindProgress, KindGate, KindComplete, KindHandoff, KindError}

// ParseEventKind validates a wire string against the known shapes.
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range EventKinds {
		if EventKind(s) == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown event type: %q", s)
}

// HookEventType returns the routing category the transport tags the wire
// message with. The category is derived solely from the shape.
func (k EventKind) HookEventType() HookEventType {
	switch k {
	case KindGate:
		return HookQualityGate
	case KindHandoff:
		return HookAgentHandoff
	default:
		return HookProtocolEvent
	}
}

// SpawnEvent announces agent startup. Task, scope and requirements are
// required from the caller.
type SpawnEvent struct {
	EventType       EventKind      `json:"event_type"`
	AgentType       core.AgentType `json:"agent_type"`
	ProtocolVersion string         `json:"protocol_version"`
	Phase           string         `json:"phase"`
	Confidence      float64        `json:"confidence"`
	Context         SpawnContext   `json:"context"`
}

// SpawnContext carries the task definition handed to the spawned agent.
type SpawnContext struct {
	Task         string         `json:"task"`
	Scope        map[string]any `json:"scope"`
	Requirements []any          `json:"requirements"`
}

// NewSpawnEvent builds a spawn event. Phase and confidence are fixed
// defaults for the initialization stage.
func NewSpawnEvent(agent core.AgentType, raw core.Data) (SpawnEvent, error) {
	task := raw.String("task")
	if task == "" {
		return SpawnEvent{}, fmt.Errorf("spawn event: missing required field %q", "task")
	}
	scope, ok := raw["scope"].(map[string]any)
	if !ok {
		return SpawnEvent{}, fmt.Errorf("spawn event: missing required field %q", "scope")
	}
	requirements, ok := raw["requirements"].([]any)
	if !ok {
		return SpawnEvent{}, fmt.Errorf("spawn event: missing required field %q", "requirements")
	}
	return SpawnEvent{
		EventType:       KindSpawn,
		AgentType:       agent,
		ProtocolVersion: Version,
		Phase:           "initialization",
		Confidence:      1.0,
		Context: SpawnContext{
			Task:         task,
			Scope:        scope,
			Requirements: requirements,
		},
	}, nil
}

// ProgressEvent reports intermediate progress. All fields are optional and
// defaulted.
type ProgressEvent struct {
	EventType       EventKind       `json:"event_type"`
	AgentType       core.AgentType  `json:"agent_type"`
	ProtocolVersion string          `json:"protocol_version"`
	Phase           string          `json:"phase"`
	Confidence      float64         `json:"confidence"`
	Context         ProgressContext `json:"context"`
}

// ProgressContext lists completed and remaining workflow steps.
type ProgressContext struct {
	CompletedSteps  []any  `json:"completed_steps"`
	RemainingSteps  []any  `json:"remaining_steps"`
	CurrentActivity string `json:"current_activity"`
}

// NewProgressEvent builds a progress event, defaulting phase to "execution"
// and confidence to 0.5.
func NewProgressEvent(agent core.AgentType, raw core.Data) ProgressEvent {
	phase := raw.String("phase")
	if phase == "" {
		phase = "execution"
	}
	confidence := 0.5
	if raw.Has("confidence") {
		confidence = raw.Float("confidence")
	}
	return ProgressEvent{
		EventType:       KindProgress,
		AgentType:       agent,
		ProtocolVersion: Version,
		Phase:           phase,
		Confidence:      confidence,
		Context: ProgressContext{
			CompletedSteps:  emptySlice(raw.Slice("completed_steps")),
			RemainingSteps:  emptySlice(raw.Slice("remaining_steps")),
			CurrentActivity: raw.String("current_activity"),
		},
	}
}

// GateEvent reports a quality gate validation result.
type GateEvent struct {
	EventType       EventKind      `json:"event_type"`
	AgentType       core.AgentType `json:"agent_type"`
	ProtocolVersion string         `json:"protocol_version"`
	GateName        string         `json:"gate_name"`
	Passed          bool           `json:"passed"`
	Score           float64        `json:"score"`
	Threshold       float64        `json:"threshold"`
	Feedback        string         `json:"feedback"`
	Context         map[string]any `json:"context"`
}

// NewGateEvent builds a gate event. Either a score or an explicit passed
// flag is required; when passed is absent it is derived as score >= threshold
// with the threshold defaulted to 0.8.
func NewGateEvent(agent core.AgentType, raw core.Data) (GateEvent, error) {
	if !raw.Has("score") && !raw.Has("passed") {
		return GateEvent{}, fmt.Errorf("gate event: requires %q or %q", "score", "passed")
	}

	score := raw.Float("score")
	threshold := DefaultGateThreshold
	if raw.Has("threshold") {
		threshold = raw.Float("threshold")
	}
	passed := raw.Bool("passed", score >= threshold)

	gateName := raw.String("gate_name")
	if gateName == "" {
		gateName = "unknown"
	}

	ctx, _ := raw["context"].(map[string]any)
	if ctx == nil {
		ctx = map[string]any{}
	}

	return GateEvent{
		EventType:       KindGate,
		AgentType:       agent,
		ProtocolVersion: Version,
		GateName:        gateName,
		Passed:          passed,
		Score:           score,
		Threshold:       threshold,
		Feedback:        raw.String("feedback"),
		Context:         ctx,
	}, nil
}

// CompleteEvent announces agent completion.
type CompleteEvent struct {
	EventType       EventKind       `json:"event_type"`
	AgentType       core.AgentType  `json:"agent_type"`
	ProtocolVersion string          `json:"protocol_version"`
	Phase           string          `json:"phase"`
	Confidence      float64         `json:"confidence"`
	Context         CompleteContext `json:"context"`
}

// CompleteContext summarizes the finished work.
type CompleteContext struct {
	OutputSummary  string         `json:"output_summary"`
	FilesModified  []any          `json:"files_modified"`
	QualityMetrics map[string]any `json:"quality_metrics"`
	DurationMS     int            `json:"duration_ms"`
}

// NewCompleteEvent builds a complete event, defaulting confidence to 0.8 and
// duration to 0.
func NewCompleteEvent(agent core.AgentType, raw core.Data) CompleteEvent {
	confidence := 0.8
	if raw.Has("confidence") {
		confidence = raw.Float("confidence")
	}
	metrics, _ := raw["quality_metrics"].(map[string]any)
	if metrics == nil {
		metrics = map[string]any{}
	}
	return CompleteEvent{
		EventType:       KindComplete,
		AgentType:       agent,
		ProtocolVersion: Version,
		Phase:           "complete",
		Confidence:      confidence,
		Context: CompleteContext{
			OutputSummary:  raw.String("output_summary"),
			FilesModified:  emptySlice(raw.Slice("files_modified")),
			QualityMetrics: metrics,
			DurationMS:     raw.Int("duration_ms"),
		},
	}
}

// HandoffEvent records delegation of work between agents. The document and
// metadata fields are JSON-serialized strings so the dashboard can persist
// them opaquely and re-parse on demand.
type HandoffEvent struct {
	EventType       EventKind      `json:"event_type"`
	AgentType       core.AgentType `json:"agent_type"`
	ProtocolVersion string         `json:"protocol_version"`
	FromAgent       core.AgentType `json:"from_agent"`
	ToAgent         string         `json:"to_agent"`
	HandoffType     string         `json:"handoff_type"`
	Document        string         `json:"document"`
	Metadata        string         `json:"metadata"`
}

// NewHandoffEvent builds a handoff event. The target agent is required;
// handoff type defaults to task delegation and priority to medium.
func NewHandoffEvent(agent core.AgentType, raw core.Data) (HandoffEvent, error) {
	toAgent := raw.String("to_agent")
	if toAgent == "" {
		return HandoffEvent{}, fmt.Errorf("handoff event: missing required field %q", "to_agent")
	}

	handoffType := raw.String("handoff_type")
	if handoffType == "" {
		handoffType = "task_delegation"
	}

	document, _ := raw["document"].(map[string]any)
	if document == nil {
		document = map[string]any{}
	}
	docJSON, err := json.Marshal(document)
	if err != nil {
		return HandoffEvent{}, fmt.Errorf("handoff event: serialize document: %w", err)
	}

	confidence := 0.8
	if raw.Has("confidence") {
		confidence = raw.Float("confidence")
	}
	priority := raw.String("priority")
	if priority == "" {
		priority = "medium"
	}
	metaJSON, err := json.Marshal(map[string]any{
		"confidence": confidence,
		"priority":   priority,
		"reason":     raw.String("reason"),
	})
	if err != nil {
		return HandoffEvent{}, fmt.Errorf("handoff event: serialize metadata: %w", err)
	}

	return HandoffEvent{
		EventType:       KindHandoff,
		AgentType:       agent,
		ProtocolVersion: Version,
		FromAgent:       agent,
		ToAgent:         toAgent,
		HandoffType:     handoffType,
		Document:        string(docJSON),
		Metadata:        string(metaJSON),
	}, nil
}

// ErrorEvent reports a failure during agent execution.
type ErrorEvent struct {
	EventType       EventKind      `json:"event_type"`
	AgentType       core.AgentType `json:"agent_type"`
	ProtocolVersion string         `json:"protocol_version"`
	Phase           string         `json:"phase"`
	Confidence      float64        `json:"confidence"`
	Context         ErrorContext   `json:"context"`
}

// ErrorContext carries error classification and recovery guidance.
type ErrorContext struct {
	ErrorCode    string   `json:"error_code"`
	ErrorMessage string   `json:"error_message"`
	Recoverable  bool     `json:"recoverable"`
	Suggestions  []string `json:"suggestions"`
}

// NewErrorEvent builds an error event with defaulted classification fields.
// Confidence is always zero for errors.
func NewErrorEvent(agent core.AgentType, raw core.Data) ErrorEvent {
	phase := raw.String("phase")
	if phase == "" {
		phase = "unknown"
	}
	code := raw.String("error_code")
	if code == "" {
		code = "UNKNOWN"
	}
	message := raw.String("error_message")
	if message == "" {
		message = "An error occurred"
	}
	suggestions := raw.Strings("suggestions")
	if suggestions == nil {
		suggestions = []string{}
	}
	return ErrorEvent{
		EventType:       KindError,
		AgentType:       agent,
		ProtocolVersion: Version,
		Phase:           phase,
		Confidence:      0.0,
		Context: ErrorContext{
			ErrorCode:    code,
			ErrorMessage: message,
			Recoverable:  raw.Bool("recoverable", false),
			Suggestions:  suggestions,
		},
	}
}

// Build constructs the typed payload for the given shape from a raw record.
// Shapes with required fields return an error when those fields are absent.
func Build(kind EventKind, agent core.AgentType, raw map[string]any) (any, error) {
	data := core.Data(raw)
	switch kind {
	case KindSpawn:
		return NewSpawnEvent(agent, data)
	case KindProgress:
		return NewProgressEvent(agent, data), nil
	case KindGate:
		return NewGateEvent(agent, data)
	case KindComplete:
		return NewCompleteEvent(agent, data), nil
	case KindHandoff:
		return NewHandoffEvent(agent, data)
	case KindError:
		return NewErrorEvent(agent, data), nil
	default:
		return nil, fmt.Errorf("unknown event type: %q", kind)
	}
}

// EstimateTokens returns a rough token estimate for a payload, assuming
// roughly four characters per token of serialized JSON. Best-effort only;
// used by demo tooling to annotate events.
func EstimateTokens(payload any) int {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0
	}
	return len(b) / 4
}

func emptySlice(s []any) []any {
	if s == nil {
		return []any{}
	}
	return s
}
