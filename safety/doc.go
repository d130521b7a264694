// Package safety screens tool invocations before they run. It blocks shell
// commands matching known destructive patterns and write access to sensitive
// files (env files, keys, credentials). Reads on sensitive files are allowed.
package safety
