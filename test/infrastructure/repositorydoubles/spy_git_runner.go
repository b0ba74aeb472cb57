//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// GitCall records a single invocation of Run.
type GitCall struct {
	Dir  string
	Args []string
}

// GitResponse scripts the outcome of a Run call matched by subcommand.
type GitResponse struct {
	Stdout string
	Err    error
}

// SpyGitRunner implements repositories.GitRunner as a configurable spy.
// Script per-subcommand responses in Responses (keyed by the first git
// argument, e.g. "clone" or "rev-parse"), then inspect Calls to verify the
// exact argv sequences that were issued.
type SpyGitRunner struct {
	Responses map[string]GitResponse
	Calls     []GitCall
}

var _ repositories.GitRunner = (*SpyGitRunner)(nil)

func (it *SpyGitRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	it.Calls = append(it.Calls, GitCall{Dir: dir, Args: args})
	if it.Responses != nil && len(args) > 0 {
		if resp, ok := it.Responses[args[0]]; ok {
			return resp.Stdout, resp.Err
		}
	}
	return "", nil
}

// CommandLines renders every recorded call as a space-joined argv line,
// which keeps sequence assertions readable.
func (it *SpyGitRunner) CommandLines() []string {
	lines := make([]string, 0, len(it.Calls))
	for _, call := range it.Calls {
		lines = append(lines, strings.Join(call.Args, " "))
	}
	return lines
}
