//go:build !debug

package debug

// Enabled is false in release builds; Log becomes a no-op.
const Enabled = false

func Log([]any, string, string, ...any) {}
