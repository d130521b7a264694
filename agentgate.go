// Package agentgate provides a high-level façade over the gate validation
// engine and the event transport, enabling rapid wiring of cooperating
// workflow agents. Most applications interact with this package by:
//  1. Creating an AgentGate via New() (optionally overriding config, logger or sender)
//  2. Validating gate contexts (Validate, ValidateAndEmit)
//  3. Emitting protocol events to the observability dashboard (Emit)
//
// The façade delegates validation to the gate registry and delivery to
// transport.Sender while keeping setup ergonomics concise. All defaults are
// safe for local development; production deployments typically supply a
// structured logger and an explicit server URL.
package agentgate

import (
	"context"
	"time"

	"github.com/hupe1980/agentgate/config"
	"github.com/hupe1980/agentgate/core"
	"github.com/hupe1980/agentgate/gate"
	"github.com/hupe1980/agentgate/logging"
	"github.com/hupe1980/agentgate/protocol"
	"github.com/hupe1980/agentgate/transport"
)

// Options configures the AgentGate instance.
type Options struct {
	// Config supplies the transport settings. Defaults to config.Default().
	Config config.Config

	// SourceApp identifies the emitting application on every envelope.
	// Defaults to Config.SourceApp, then "agentgate".
	SourceApp string

	// SessionID correlates all envelopes emitted by this instance. Defaults
	// to a generated timestamp id.
	SessionID string

	// Sender overrides the transport built from Config (mainly for tests).
	Sender EventSender

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// EventSender performs best-effort envelope delivery.
type EventSender interface {
	Send(ctx context.Context, env protocol.Envelope) bool
}

// AgentGate is the high-level façade aggregating the gate registry and the
// event transport.
type AgentGate struct {
	opts Options
}

// New creates a new AgentGate instance with optional overrides. An unset
// sender is initialized from the configuration.
func New(optFns ...func(o *Options)) *AgentGate {
	opts := Options{
		Config: config.Default(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.SourceApp == "" {
		opts.SourceApp = opts.Config.SourceApp
	}
	if opts.SourceApp == "" {
		opts.SourceApp = "agentgate"
	}
	if opts.SessionID == "" {
		opts.SessionID = core.NewSessionID(time.Now())
	}

	if opts.Sender == nil {
		opts.Sender = transport.NewSender(transport.Config{
			BaseURL: opts.Config.ServerURL,
			Timeout: opts.Config.Timeout,
		}, func(o *transport.Options) {
			o.Logger = opts.Logger
		})
	}

	return &AgentGate{opts: opts}
}

// SessionID returns the session identifier stamped on emitted envelopes.
func (g *AgentGate) SessionID() string { return g.opts.SessionID }

// Validate runs the named gate against a raw context record and returns the
// verdict. Unknown gates auto-pass; validation never fails with an error.
func (g *AgentGate) Validate(gateName string, raw map[string]any) core.GateVerdict {
	verdict := gate.Validate(gateName, raw)
	g.opts.Logger.Debug("gate validated",
		"gate", verdict.GateName,
		"passed", verdict.Passed,
		"score", verdict.Score,
		"blocking", verdict.Blocking,
	)
	return verdict
}

// ValidateAndEmit validates and then delivers the verdict to the dashboard
// under the QualityGate routing category. The returned bool reports delivery
// only; the verdict is authoritative regardless of transport outcome.
func (g *AgentGate) ValidateAndEmit(ctx context.Context, gateName string, raw map[string]any) (core.GateVerdict, bool) {
	verdict := g.Validate(gateName, raw)

	agent := core.AgentType(core.Data(raw).String("agent_type"))
	env := protocol.NewVerdictEnvelope(g.opts.SourceApp, g.opts.SessionID, agent, verdict)

	return verdict, g.opts.Sender.Send(ctx, env)
}

// Emit builds a typed protocol event from the raw payload and delivers it
// best-effort. It returns true iff the dashboard acknowledged the envelope;
// build failures and transport failures both yield false.
func (g *AgentGate) Emit(ctx context.Context, agent core.AgentType, kind protocol.EventKind, payload map[string]any) bool {
	event, err := protocol.Build(kind, agent, payload)
	if err != nil {
		g.opts.Logger.Debug("event build failed", "kind", string(kind), "error", err)
		return false
	}

	env := protocol.NewEnvelope(g.opts.SourceApp, g.opts.SessionID, kind.HookEventType(), event)

	return g.opts.Sender.Send(ctx, env)
}

// ConfidenceAction maps a confidence score to the workflow action the
// caller should take.
func (g *AgentGate) ConfidenceAction(confidence float64) gate.Action {
	return gate.ConfidenceAction(confidence)
}
