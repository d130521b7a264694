// Package transport delivers envelopes to the observability dashboard on a
// strictly best-effort basis. A single HTTP POST with a bounded timeout is
// attempted per envelope; every failure mode (timeout, connection refused,
// non-2xx status, serialization error) is converted to a boolean false and
// never surfaced as an error, retried, or queued. A down dashboard must
// never stall or fail the primary agent workflow.
//
// The endpoint is injected as explicit configuration at construction; the
// sender never reads the process environment. There is no ordering guarantee
// between independently sent envelopes.
package transport
