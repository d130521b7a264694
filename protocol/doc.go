// Package protocol implements the versioned event shapes exchanged with the
// observability dashboard and the envelope builder wrapping them for
// delivery.
//
// Six event shapes exist (spawn, progress, gate, complete, handoff, error),
// all carrying protocol version "2.0". Each shape is a tagged struct whose
// required fields are validated and whose optional fields are defaulted once
// at the construction boundary, never via ad hoc lookups downstream. The
// shape alone determines the routing category the transport tags the wire
// message with.
//
// Envelopes are ephemeral: each exists only for the duration of one
// transport attempt and is never retried or re-used.
package protocol
