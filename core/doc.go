// Package core provides the foundational domain types used by AgentGate. It
// defines the core abstractions for:
//
//   - Agent roles (the fixed set of cooperating workflow participants)
//   - Gate contexts (normalized, per-call validation input)
//   - Gate verdicts (immutable pass/fail/score/feedback results)
//
// The package intentionally keeps implementation concerns (validator logic,
// envelope construction, network delivery) out of scope, exposing small value
// types so higher layers stay decoupled. Contexts are constructed fresh per
// validation call and never mutated afterwards; verdicts are treated as
// immutable once produced. All exported identifiers include concise
// documentation to aid discoverability and external consumption.
package core
