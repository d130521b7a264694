// Package config provides configuration loading for AgentGate.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (OBSERVABILITY_SERVER, OBSERVABILITY_TIMEOUT, ...)
//  2. YAML config file (optional)
//  3. Hardcoded defaults
package config
