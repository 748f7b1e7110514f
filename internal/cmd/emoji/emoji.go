// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

// Symbol constants for status indicators and alerts.
const (
	// Success marks a manifest that merged cleanly.
	Success = "✓"

	// Error marks a failed or aborted manifest.
	Error = "✗"

	// Warning marks a skipped manifest.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"

	// Unknown represents unrecognized states.
	Unknown = "?"
)
