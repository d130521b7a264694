package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/agentgate/core"
	"github.com/hupe1980/agentgate/safety"
)

var guardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Screen a tool invocation read from stdin",
	Long: `Guard reads a tool invocation payload from stdin and checks it against
the safety blocklists. Blocked invocations produce a JSON error on stdout
and exit code 1; everything else exits 0 silently.

Example:
  echo '{"tool_name":"Bash","tool_input":{"command":"rm -rf /"}}' | gatectl guard`,
	RunE: runGuard,
}

func runGuard(_ *cobra.Command, _ []string) error {
	payload := core.ParseContext(os.Stdin)

	toolName := core.Data(payload).String("tool_name")
	toolInput := map[string]any(core.Data(payload).Map("tool_input"))

	decision := safety.NewFilter().Check(toolName, toolInput)
	if !decision.Allowed {
		out, _ := json.Marshal(map[string]string{
			"status":  "error",
			"message": decision.Reason,
		})
		fmt.Println(string(out))
		os.Exit(1)
	}

	return nil
}
