// Package gate implements the quality-gate validation engine: a static
// registry mapping gate names to pure scoring functions, the validators for
// every agent role, and the confidence-action resolver.
//
// Each validator is a pure function of core.GateContext: deterministic, free
// of I/O and side effects, and safe to call concurrently. A validator sums
// independently weighted indicators over the context's data map, clamps the
// result into [0,1] and appends one targeted suggestion per unmet indicator
// in check order, so identical inputs always yield identical verdicts.
//
// Unregistered gate names auto-pass. An unrecoverable name mismatch (for
// example a typo in an agent protocol) must never silently halt a multi-agent
// workflow; this is a documented risk, not a safety guarantee.
package gate
