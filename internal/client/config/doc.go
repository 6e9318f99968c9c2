// Package config loads runtime configuration for the xxi-storage CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with --config.
//  3. Command-line flags explicitly set by the user.
//
// Supported flags
//
//	--server   host:port of the gRPC endpoint
//	--session  path of the TOML session file
//	--timeout  per-request timeout, e.g. "30s"
package config
