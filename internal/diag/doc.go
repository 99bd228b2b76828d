// Package diag defines structured diagnostics for the boilerplate CLI.
// The template core stays pure and returns plain errors; the driver layer
// adapts those errors into diagnostics for user-facing output.
package diag
