// Package commands implements the command registry and the built-in
// command set: filesystem operations, text utilities, environment
// management, and session helpers.
//
// Each command receives a Context (filesystem, environment, palette,
// registry) and a Request (expanded arguments plus piped input) and
// returns a Result. Redirection and pipelines are the executor's job;
// commands never touch them.
package commands
