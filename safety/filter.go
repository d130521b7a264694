package safety

import (
	"fmt"
	"regexp"
)

// blockedCommands are shell command patterns that are never allowed.
var blockedCommands = []*regexp.Regexp{
	regexp.MustCompile(`(?i)rm\s+-rf\s+/`),
	regexp.MustCompile(`(?i)rm\s+-rf\s+~`),
	regexp.MustCompile(`(?i)>\s*/dev/sd`),
	regexp.MustCompile(`(?i)mkfs\.`),
	regexp.MustCompile(`(?i)dd\s+if=.*of=/dev`),
}

// sensitiveFiles are file path patterns that must not be written to.
var sensitiveFiles = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\.env$`),
	regexp.MustCompile(`(?i)\.env\.\w+$`),
	regexp.MustCompile(`(?i)private.*key`),
	regexp.MustCompile(`(?i)credentials`),
	regexp.MustCompile(`(?i)secrets?\.(json|yaml|yml)$`),
	regexp.MustCompile(`(?i)\.pem$`),
	regexp.MustCompile(`(?i)\.key$`),
}

// writeTools are tool names that modify files.
var writeTools = map[string]bool{
	"Write": true,
	"Edit":  true,
}

// Decision is the outcome of a safety check. Reason is empty when allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

// Filter validates tool invocations against the static blocklists.
type Filter struct{}

// NewFilter returns a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Check inspects a tool invocation and decides whether it may proceed.
// Shell commands are matched against the dangerous command patterns; file
// tools are checked for writes to sensitive paths.
func (f *Filter) Check(toolName string, input map[string]any) Decision {
	if toolName == "Bash" {
		command, _ := input["command"].(string)
		for _, pattern := range blockedCommands {
			if pattern.MatchString(command) {
				return Decision{
					Allowed: false,
					Reason:  fmt.Sprintf("Blocked dangerous command pattern: %s", pattern.String()),
				}
			}
		}
	}

	if toolName == "Read" || writeTools[toolName] {
		filepath, _ := input["path"].(string)
		if filepath == "" {
			filepath, _ = input["file_path"].(string)
		}

		if isSensitiveFile(filepath) && writeTools[toolName] {
			return Decision{
				Allowed: false,
				Reason:  fmt.Sprintf("Blocked write to sensitive file: %s", filepath),
			}
		}
	}

	return Decision{Allowed: true}
}

func isSensitiveFile(filepath string) bool {
	if filepath == "" {
		return false
	}

	for _, pattern := range sensitiveFiles {
		if pattern.MatchString(filepath) {
			return true
		}
	}

	return false
}
