// Package types defines the shared types exchanged between the shell
// executor and command handlers: invocation requests, results, and
// command definitions.
package types
