package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// Add is the interface for the add command.
type Add interface {
	Execute(ctx context.Context, store repositories.ManifestRepository, opts AddOptions) error
}

// AddOptions holds the descriptor fields for a new manifest entry.
type AddOptions struct {
	URL      string
	Path     string
	Branch   string
	Commit   string
	Depth    int
	GitClean bool
}

// AddCommand appends a new descriptor to the manifest and clones its
// working copy, persisting the resulting pinned commit.
type AddCommand struct {
	workingCopies repositories.WorkingCopyRepository
}

var _ Add = (*AddCommand)(nil)

// NewAddCommand creates a new AddCommand.
func NewAddCommand(workingCopies repositories.WorkingCopyRepository) *AddCommand {
	return &AddCommand{workingCopies: workingCopies}
}

// Execute adds the descriptor and reconciles it. A path already declared is
// fatal; a clone failure is logged and the entry is still persisted so the
// next run can repair it.
func (it *AddCommand) Execute(
	ctx context.Context,
	store repositories.ManifestRepository,
	opts AddOptions,
) error {
	if _, ok := store.Find(opts.Path); ok {
		return fmt.Errorf("%w: %s", entities.ErrRepositoryExists, opts.Path)
	}

	pruneRemoved(store, it.workingCopies)

	repo := entities.Repository{
		Path:   opts.Path,
		URL:    opts.URL,
		Branch: opts.Branch,
		Commit: opts.Commit,
		Depth:  opts.Depth,
	}
	if err := store.Add(repo); err != nil {
		return err
	}

	commit, err := it.workingCopies.Clone(
		ctx, repo, store.Dir(), entities.CloneOptions{GitClean: opts.GitClean},
	)
	if err != nil {
		logger.Errorf("Failed to clone repository %q: %v", repo.Path, err)
	} else {
		store.UpdateCommit(repo.Path, commit)
	}

	if saveErr := store.Save(); saveErr != nil {
		return saveErr
	}
	persistShadow(store)
	return nil
}
