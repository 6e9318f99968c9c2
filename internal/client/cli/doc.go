// Package cli implements the xxi command-line client.
//
// Every invocation loads configuration (defaults, JSON file, flags), reads
// the saved session and dials the server before running one command.
// Tokens rotated by the client during a command are written back to the
// session file, so the next invocation picks them up.
//
// Commands:
//   - register, login, logout, whoami
//   - upload, ls, shared
//   - share, revoke, public, private, rm
//   - url and get, which also work without logging in for public files
package cli
