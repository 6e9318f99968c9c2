// Package client is the gRPC client of the xxi-storage service used by the CLI.
//
// GRPCClient manages a connection, injects the access token through a unary
// interceptor, transparently refreshes an expired access token once per call
// and maps gRPC status codes onto the sentinel errors of internal/common, so
// callers can match them with errors.Is.
//
// Token changes (login, refresh, logout) are reported through the callback
// set with OnTokens, which the CLI uses to keep its session file current.
package client
