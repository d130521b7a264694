package core

import "encoding/json"

// GateVerdict is the structured result of a quality gate validation. After
// production it should be treated as immutable. It captures:
//
//   - Identification (GateName)
//   - Outcome (Passed, Score vs Threshold)
//   - Remediation guidance (Feedback, ordered Suggestions)
//   - Workflow control (Blocking)
//
// Invariants: Blocking implies !Passed, and Score is always clamped into
// [0,1] regardless of input magnitude.
type GateVerdict struct {
	GateName    string   `json:"gate_name"`
	Passed      bool     `json:"passed"`
	Score       float64  `json:"score"`
	Threshold   float64  `json:"threshold"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Blocking    bool     `json:"blocking"`
}

// JSON renders the verdict as an indented JSON report.
func (v GateVerdict) JSON() string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ClampScore bounds a raw weighted sum into the valid score range [0,1].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
