package entities

import (
	"os"
	"strconv"
)

// Settings holds process-wide knobs for the git adapter. It is constructed
// once, registered in the container, and passed explicitly — there is no
// global mutable configuration.
type Settings struct {
	// GitBinary is the executable used for all version-control calls.
	GitBinary string
	// Jobs is passed as --jobs to clone and fetch when greater than zero.
	Jobs int
	// GitEnv are extra environment entries overlaid on each subprocess,
	// e.g. a GIT_SSH_COMMAND pointing at a deploy key.
	GitEnv []string
}

// NewSettings builds Settings from the environment with documented defaults:
// binary "git", no --jobs flag, no environment overlay.
func NewSettings() *Settings {
	settings := &Settings{GitBinary: "git"}

	if bin := os.Getenv("REPOSYNC_GIT_BIN"); bin != "" {
		settings.GitBinary = bin
	}
	if raw := os.Getenv("REPOSYNC_GIT_JOBS"); raw != "" {
		if jobs, err := strconv.Atoi(raw); err == nil && jobs > 0 {
			settings.Jobs = jobs
		}
	}
	if sshCmd := os.Getenv("GIT_SSH_COMMAND"); sshCmd != "" {
		settings.GitEnv = append(settings.GitEnv, "GIT_SSH_COMMAND="+sshCmd)
	}

	return settings
}
