package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// Remove is the interface for the rm command.
type Remove interface {
	Execute(ctx context.Context, store repositories.ManifestRepository, opts RemoveOptions) error
}

// RemoveOptions identifies the descriptor to remove.
type RemoveOptions struct {
	Path string
}

// RemoveCommand deletes a descriptor's working copy and drops it from the
// manifest.
type RemoveCommand struct {
	workingCopies repositories.WorkingCopyRepository
}

var _ Remove = (*RemoveCommand)(nil)

// NewRemoveCommand creates a new RemoveCommand.
func NewRemoveCommand(workingCopies repositories.WorkingCopyRepository) *RemoveCommand {
	return &RemoveCommand{workingCopies: workingCopies}
}

// Execute removes the descriptor. A path not present in the manifest is
// fatal and leaves the manifest file untouched.
func (it *RemoveCommand) Execute(
	ctx context.Context,
	store repositories.ManifestRepository,
	opts RemoveOptions,
) error {
	repo, ok := store.Find(opts.Path)
	if !ok {
		return fmt.Errorf("%w: %s", entities.ErrRepositoryNotFound, opts.Path)
	}

	if err := it.workingCopies.Remove(repo, store.Dir()); err != nil {
		return err
	}

	store.Remove(opts.Path)
	if err := store.Save(); err != nil {
		return err
	}
	persistShadow(store)
	return nil
}
