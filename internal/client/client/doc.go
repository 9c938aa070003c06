// Package client contains the client-side transport for the authentication
// server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the three protocol calls: Register, CreateAuthenticationChallenge and
//     VerifyAuthentication.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, encodes big integers as minimal big-endian bytes on the
//     wire, applies a per-call timeout, and maps gRPC status codes to
//     sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrAuthenticationFailed, ErrUserNotFound,
// ErrAlreadyRegistered, ErrInvalidInput.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client
