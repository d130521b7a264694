package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/agentgate/core"
	"github.com/hupe1980/agentgate/protocol"
)

var (
	flagEmitAgent string
	flagEventType string
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Emit a protocol event read from stdin",
	Long: `Emit builds a typed protocol event from a JSON payload read from stdin
and delivers it to the observability dashboard. Delivery is best effort:
the command prints {"status":"sent"} or {"status":"failed"} and always
exits 0 so a missing dashboard never interrupts the workflow.

Examples:
  # Announce a new researcher
  echo '{"task":"survey caching options","scope":{"paths":["docs/"]},"requirements":["compare TTLs"]}' | \
    gatectl emit --agent researcher --event-type spawn

  # Record a handoff
  gatectl emit --agent researcher --event-type handoff < handoff.json`,
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringVar(&flagEmitAgent, "agent", "", "agent role (required)")
	emitCmd.Flags().StringVar(&flagEventType, "event-type", "", "event kind: spawn, progress, gate, complete, handoff or error (required)")
	_ = emitCmd.MarkFlagRequired("agent")
	_ = emitCmd.MarkFlagRequired("event-type")
}

func runEmit(cmd *cobra.Command, _ []string) error {
	kind, err := protocol.ParseEventKind(flagEventType)
	if err != nil {
		fmt.Println(`{"status": "failed"}`)
		return nil
	}

	payload := core.ParseContext(os.Stdin)

	g := newGate()

	status := "failed"
	if g.Emit(cmd.Context(), core.AgentType(flagEmitAgent), kind, payload) {
		status = "sent"
	}
	fmt.Printf("{\"status\": %q}\n", status)

	return nil
}
