// Package main implements the gatectl CLI, the hook entrypoint that validates
// quality gates, emits protocol events to the observability dashboard and
// screens tool invocations.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/agentgate"
	"github.com/hupe1980/agentgate/config"
	"github.com/hupe1980/agentgate/core"
)

// sessionIDEnv carries the session identifier between hook invocations.
const sessionIDEnv = "AGENT_SESSION_ID"

var (
	// flagSessionID overrides the session id from the environment.
	flagSessionID string
	// flagSourceApp overrides the detected source application.
	flagSourceApp string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gatectl",
	Short: "Quality gate validation and event emission for workflow agents",
	Long: `gatectl is the command-line entrypoint for the agent quality gate system.
It validates gate contexts read from stdin, emits protocol events to the
observability dashboard and screens tool invocations before execution.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSessionID, "session-id", "", "session identifier (defaults to $"+sessionIDEnv+" or a generated id)")
	rootCmd.PersistentFlags().StringVar(&flagSourceApp, "source-app", "", "source application identifier (defaults to the working directory)")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(guardCmd)
	rootCmd.AddCommand(classifyCmd)
}

// resolveSessionID picks the session id: flag, then environment, then a
// generated timestamp id.
func resolveSessionID() string {
	if flagSessionID != "" {
		return flagSessionID
	}
	if sid := os.Getenv(sessionIDEnv); sid != "" {
		return sid
	}
	return core.NewSessionID(time.Now())
}

// resolveSourceApp picks the source application: flag, then $PWD, then the
// process working directory.
func resolveSourceApp() string {
	if flagSourceApp != "" {
		return flagSourceApp
	}
	if pwd := os.Getenv("PWD"); pwd != "" {
		return pwd
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "unknown"
}

// newGate wires an AgentGate from the loaded configuration. Config errors
// degrade to defaults so a misconfigured environment never blocks the hook.
func newGate() *agentgate.AgentGate {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	return agentgate.New(func(o *agentgate.Options) {
		o.Config = cfg
		o.SessionID = resolveSessionID()
		o.SourceApp = resolveSourceApp()
	})
}
