package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/agentgate/core"
)

var (
	flagGate  string
	flagAgent string
	flagEmit  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a quality gate context read from stdin",
	Long: `Validate runs the named quality gate against a JSON context read from
stdin and prints the verdict. The exit code is 0 when the gate passed and 1
otherwise, independent of whether the verdict could be delivered.

Examples:
  # Validate the input_clarity gate for the researcher role
  echo '{"data":{"query":"How should we cache results?"}}' | gatectl validate --gate input_clarity --agent researcher

  # Validate and deliver the verdict to the dashboard
  gatectl validate --gate no_regressions --agent implementer --emit < context.json`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagGate, "gate", "", "gate name (required)")
	validateCmd.Flags().StringVar(&flagAgent, "agent", "", "agent role (required)")
	validateCmd.Flags().BoolVar(&flagEmit, "emit", false, "deliver the verdict to the dashboard")
	_ = validateCmd.MarkFlagRequired("gate")
	_ = validateCmd.MarkFlagRequired("agent")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	raw := core.ParseContext(os.Stdin)
	raw["agent_type"] = flagAgent

	g := newGate()

	var verdict core.GateVerdict
	if flagEmit {
		// Delivery is best effort and never changes the exit code.
		verdict, _ = g.ValidateAndEmit(cmd.Context(), flagGate, raw)
	} else {
		verdict = g.Validate(flagGate, raw)
	}

	fmt.Println(verdict.JSON())

	if !verdict.Passed {
		os.Exit(1)
	}
	return nil
}
