// Package eventstore houses a volatile store for received event envelopes,
// backing the demo dashboard server. It is deliberately not part of the
// delivery contract: the sender never persists or queues, the store only
// exists on the receiving side.
//
// Add additional backends (Redis, Postgres, etc.) in sub-packages without
// changing any calling code, only the wiring layer needs to decide which
// implementation to instantiate.
package eventstore
