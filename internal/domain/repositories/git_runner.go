package repositories

import "context"

// GitRunner executes the external version-control binary as a subprocess.
// One blocking subprocess per call, no pooling, no retries — retry policy,
// if any, belongs to the caller. Failures carry the original argv and the
// captured stderr/stdout for diagnostics.
type GitRunner interface {
	// Run executes git with the given arguments in dir and returns the
	// trimmed stdout.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}
