package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// Update is the interface for the update command (batch or single path).
type Update interface {
	Execute(ctx context.Context, store repositories.ManifestRepository, opts UpdateOptions) error
}

// UpdateOptions holds runtime options for one update run.
type UpdateOptions struct {
	Path               string // If set, only update this descriptor
	Remote             bool
	GitClean           bool
	IgnoreLocalChanges bool
}

// UpdateCommand reconciles manifest entries against their working copies in
// declaration order, persisting each resulting commit as soon as it is
// known so a crash mid-batch leaves completed entries durably pinned.
type UpdateCommand struct {
	workingCopies repositories.WorkingCopyRepository
}

var _ Update = (*UpdateCommand)(nil)

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(workingCopies repositories.WorkingCopyRepository) *UpdateCommand {
	return &UpdateCommand{workingCopies: workingCopies}
}

// Execute updates the selected descriptors. Per-descriptor failures are
// logged and counted without aborting the batch; only an explicit -p path
// with no match is fatal.
func (it *UpdateCommand) Execute(
	ctx context.Context,
	store repositories.ManifestRepository,
	opts UpdateOptions,
) error {
	pruneRemoved(store, it.workingCopies)

	var repos []entities.Repository
	if opts.Path != "" {
		repo, ok := store.Find(opts.Path)
		if !ok {
			return fmt.Errorf("%w: %s", entities.ErrRepositoryNotFound, opts.Path)
		}
		repos = []entities.Repository{repo}
	} else {
		repos = store.All()
	}

	failures := 0
	for _, repo := range repos {
		logger.Infof("Processing repository: %s", repo.Path)

		commit, err := it.workingCopies.Update(ctx, repo, store.Dir(), entities.UpdateOptions{
			Remote:             opts.Remote,
			GitClean:           opts.GitClean,
			IgnoreLocalChanges: opts.IgnoreLocalChanges,
		})
		switch {
		case errors.Is(err, entities.ErrUserCancelled):
			logger.Infof("Skipping repository %q: declined by user", repo.Path)
			continue
		case err != nil:
			logger.Errorf("Failed to update repository %q: %v", repo.Path, err)
			failures++
			continue
		}

		store.UpdateCommit(repo.Path, commit)
		if saveErr := store.Save(); saveErr != nil {
			logger.Errorf("Failed to persist manifest after %q: %v", repo.Path, saveErr)
		}
	}

	persistShadow(store)
	logger.Infof("Update complete: %d repositories processed, %d failures", len(repos), failures)
	return nil
}
