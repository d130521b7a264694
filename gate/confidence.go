package gate

// Action is the workflow action resolved from a scalar confidence level.
type Action string

const (
	// ActionProceed lets the workflow continue past the current step.
	ActionProceed Action = "proceed"
	// ActionClarify pauses the workflow for additional input.
	ActionClarify Action = "clarify"
	// ActionBlock halts the workflow at the current step.
	ActionBlock Action = "block"
)

// ConfidenceAction maps a confidence score to a workflow action under strict
// mode thresholds: >=0.8 proceed, >=0.6 clarify, otherwise block. Used by
// orchestration layers outside this engine.
func ConfidenceAction(confidence float64) Action {
	switch {
	case confidence >= 0.8:
		return ActionProceed
	case confidence >= 0.6:
		return ActionClarify
	default:
		return ActionBlock
	}
}
