//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// SpyAddCommand implements commands.Add, recording the options it receives.
type SpyAddCommand struct {
	Err   error
	Calls []commands.AddOptions
}

var _ commands.Add = (*SpyAddCommand)(nil)

func (it *SpyAddCommand) Execute(
	_ context.Context, _ repositories.ManifestRepository, opts commands.AddOptions,
) error {
	it.Calls = append(it.Calls, opts)
	return it.Err
}

// SpyUpdateCommand implements commands.Update, recording the options it receives.
type SpyUpdateCommand struct {
	Err   error
	Calls []commands.UpdateOptions
}

var _ commands.Update = (*SpyUpdateCommand)(nil)

func (it *SpyUpdateCommand) Execute(
	_ context.Context, _ repositories.ManifestRepository, opts commands.UpdateOptions,
) error {
	it.Calls = append(it.Calls, opts)
	return it.Err
}

// SpyRemoveCommand implements commands.Remove, recording the options it receives.
type SpyRemoveCommand struct {
	Err   error
	Calls []commands.RemoveOptions
}

var _ commands.Remove = (*SpyRemoveCommand)(nil)

func (it *SpyRemoveCommand) Execute(
	_ context.Context, _ repositories.ManifestRepository, opts commands.RemoveOptions,
) error {
	it.Calls = append(it.Calls, opts)
	return it.Err
}

// SpyGenerateCommand implements commands.Generate, recording the options it receives.
type SpyGenerateCommand struct {
	Err   error
	Calls []commands.GenerateOptions
}

var _ commands.Generate = (*SpyGenerateCommand)(nil)

func (it *SpyGenerateCommand) Execute(opts commands.GenerateOptions) error {
	it.Calls = append(it.Calls, opts)
	return it.Err
}
