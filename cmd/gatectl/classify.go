package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/agentgate/classify"
	"github.com/hupe1980/agentgate/core"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a completed tool invocation read from stdin",
	Long: `Classify reads a tool completion payload from stdin, scans the output
for error markers and test run results, and prints the outcome as JSON.
A structured "success" field in the tool response overrides the heuristic.

Example:
  echo '{"tool_name":"Bash","tool_input":{"command":"go test ./..."},"tool_response":{"output":"ok  3 passed"}}' | gatectl classify`,
	RunE: runClassify,
}

func runClassify(_ *cobra.Command, _ []string) error {
	payload := core.ParseContext(os.Stdin)

	toolName := core.Data(payload).String("tool_name")
	command := core.Data(payload).Map("tool_input").String("command")
	response := core.Data(payload).Map("tool_response")

	outcome := classify.NewHeuristic().Classify(toolName, command, response.String("output"))

	var structured *bool
	if response.Has("success") {
		v := response.Bool("success", false)
		structured = &v
	}

	result := map[string]any{
		"success":     classify.ResolveSuccess(structured, outcome.Success),
		"test_result": outcome.TestResult,
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))

	return nil
}
