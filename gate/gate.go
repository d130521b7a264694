package gate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/agentgate/core"
)

// DefaultThreshold is the strict pass threshold applied to every gate that
// does not declare its own.
const DefaultThreshold = 0.8

// Validator is a pure scoring function evaluating a context record against
// weighted criteria. Implementations must be deterministic and side-effect
// free.
type Validator func(core.GateContext) core.GateVerdict

// validators is the immutable static registry. It is populated once at init
// and never mutated afterwards, so concurrent lookups need no locking.
var validators = map[string]Validator{
	// Researcher gates
	"input_clarity":     inputClarity,
	"source_coverage":   sourceCoverage,
	"synthesis_quality": synthesisQuality,

	// Implementer gates
	"requirements_clarity": requirementsClarity,
	"code_quality":         codeQuality,
	"test_coverage":        testCoverage,
	"no_regressions":       noRegressions,

	// Reviewer gates
	"review_completeness": reviewCompleteness,
	"security_check":      securityCheck,

	// Consensus gates
	"decision_clarity":     decisionClarity,
	"perspective_coverage": perspectiveCoverage,
	"decision_confidence":  decisionConfidence,

	// Memory keeper gates
	"memory_relevance": memoryRelevance,
}

// Lookup returns the validator registered for the gate name, or nil when the
// name is unknown.
func Lookup(name string) Validator { return validators[name] }

// Names returns all registered gate names in sorted order.
func Names() []string {
	names := make([]string, 0, len(validators))
	for name := range validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate assembles a context from the raw record and runs the named gate.
// Unregistered names auto-pass with a full score so that a mistyped gate
// name never halts the calling workflow.
func Validate(name string, raw map[string]any) core.GateVerdict {
	v := Lookup(name)
	if v == nil {
		return core.GateVerdict{
			GateName:    name,
			Passed:      true,
			Score:       1.0,
			Threshold:   DefaultThreshold,
			Feedback:    fmt.Sprintf("No validator defined for gate '%s' - auto-pass", name),
			Suggestions: []string{},
			Blocking:    false,
		}
	}
	return v(core.AssembleContext(raw))
}

// ValidateContext runs the named gate against an already assembled context.
func ValidateContext(name string, ctx core.GateContext) core.GateVerdict {
	v := Lookup(name)
	if v == nil {
		return Validate(name, nil)
	}
	return v(ctx)
}

// weighted pairs an indicator key with its score contribution. Validators
// declare indicator lists as ordered slices so suggestion order matches
// check order.
type weighted struct {
	key    string
	weight float64
}

// pick returns yes when cond holds, otherwise no. Used to assemble the
// two-part feedback strings shared by all validators.
func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// failedOnly drops the accumulated suggestions when the gate passed.
func failedOnly(passed bool, suggestions []string) []string {
	if passed {
		return []string{}
	}
	if suggestions == nil {
		return []string{}
	}
	return suggestions
}

// humanize turns an indicator key into readable suggestion text.
func humanize(key string) string { return strings.ReplaceAll(key, "_", " ") }

// truthy mirrors the loose presence semantics of decoded JSON values: empty
// strings, empty collections, zero numbers, false and nil all count as unset.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case core.Data:
		return len(t) > 0
	default:
		return true
	}
}
