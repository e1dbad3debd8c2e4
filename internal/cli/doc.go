// Package cli turns command-line arguments into a validated Config, builds
// the process logger, and carries exit codes back to main through ExitError.
package cli
