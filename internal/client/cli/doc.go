// Package cli provides the command-line client for the authentication
// server.
//
// It wires configuration, the gRPC transport and the auth service behind
// two one-shot subcommands:
//
//	register --name <NAME> [--password <PASSWORD>]
//	login    --name <NAME> [--password <PASSWORD>]
//
// When --password is omitted the password is read from the terminal
// without echo. Results are printed in color; any returned error should
// make the process exit non-zero.
//
// The entry point is App.Run(ctx, args), which executes a single
// subcommand and returns.
package cli
