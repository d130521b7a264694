// Package classify provides best effort heuristics for interpreting raw tool
// output. It scans free text for common error markers and detects test runner
// invocations to estimate pass/fail, producing an Outcome that downstream
// gates can feed into their structured context.
//
// The heuristics are intentionally conservative and never override structured
// signals: use ResolveSuccess to combine an explicit success field with the
// heuristic result.
package classify
