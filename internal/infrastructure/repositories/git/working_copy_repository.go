package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// WorkingCopyRepository reconciles on-disk checkouts against their
// descriptors by driving the git subprocess. State is derived from the
// filesystem on every call; a run interrupted mid-operation converges on
// the next invocation instead of requiring manual repair.
type WorkingCopyRepository struct {
	runner    repositories.GitRunner
	confirmer repositories.Confirmer
	settings  *entities.Settings
}

var _ repositories.WorkingCopyRepository = (*WorkingCopyRepository)(nil)

// NewWorkingCopyRepository creates a reconciler using the given runner,
// confirmation policy, and settings.
func NewWorkingCopyRepository(
	runner repositories.GitRunner,
	confirmer repositories.Confirmer,
	settings *entities.Settings,
) *WorkingCopyRepository {
	return &WorkingCopyRepository{
		runner:    runner,
		confirmer: confirmer,
		settings:  settings,
	}
}

// State reports the observed on-disk state of the descriptor's working copy.
func (it *WorkingCopyRepository) State(
	repo entities.Repository,
	baseDir string,
) entities.WorkingCopyState {
	abs := it.absPath(repo, baseDir)
	if _, err := os.Stat(abs); err != nil {
		return entities.WorkingCopyAbsent
	}
	if _, err := os.Stat(filepath.Join(abs, ".git")); err != nil {
		return entities.WorkingCopyUntracked
	}
	return entities.WorkingCopyTracked
}

// Clone brings an absent or untracked working copy to the declared state
// and returns the resulting pinned commit.
func (it *WorkingCopyRepository) Clone(
	ctx context.Context,
	repo entities.Repository,
	baseDir string,
	opts entities.CloneOptions,
) (string, error) {
	if err := repo.Validate(); err != nil {
		return "", err
	}

	abs := it.absPath(repo, baseDir)
	parent := filepath.Dir(abs)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", fmt.Errorf("failed to create parent directory %q: %w", parent, err)
	}

	recreated := false
	switch it.State(repo, baseDir) {
	case entities.WorkingCopyAbsent:
		logger.Infof("Cloning %q into %s...", repo.URL, abs)
		if err := it.clone(ctx, repo, abs, parent); err != nil {
			return "", err
		}
	case entities.WorkingCopyUntracked:
		logger.Infof("Directory %s exists without git metadata; recreating...", abs)
		if err := it.recreate(ctx, repo, abs); err != nil {
			return "", err
		}
		recreated = true
	case entities.WorkingCopyTracked:
		// already cloned; fall through to the pin step
	}

	if repo.Commit != "" {
		if err := it.fetchAndReset(ctx, abs, repo.Commit, repo.Commit, true); err != nil {
			return "", err
		}
	} else if recreated {
		// a recreated copy has no content yet; pull the branch tip
		if err := it.fetchAndReset(ctx, abs, repo.Branch, "FETCH_HEAD", true); err != nil {
			return "", err
		}
	}

	return it.finish(ctx, abs, opts.GitClean)
}

// Update fetches and resets an existing working copy. Absent copies are
// delegated to Clone; untracked ones are recreated first.
func (it *WorkingCopyRepository) Update(
	ctx context.Context,
	repo entities.Repository,
	baseDir string,
	opts entities.UpdateOptions,
) (string, error) {
	if err := repo.Validate(); err != nil {
		return "", err
	}

	abs := it.absPath(repo, baseDir)
	state := it.State(repo, baseDir)

	if state == entities.WorkingCopyTracked && !opts.IgnoreLocalChanges {
		question := fmt.Sprintf(
			"Updating %q discards any local changes. Continue?", repo.Path,
		)
		if !it.confirmer.Confirm(question) {
			return "", entities.ErrUserCancelled
		}
	}

	switch state {
	case entities.WorkingCopyAbsent:
		return it.Clone(ctx, repo, baseDir, entities.CloneOptions{GitClean: opts.GitClean})
	case entities.WorkingCopyUntracked:
		logger.Infof("Directory %s exists without git metadata; recreating...", abs)
		if err := it.recreate(ctx, repo, abs); err != nil {
			return "", err
		}
	case entities.WorkingCopyTracked:
	}

	if opts.Remote {
		branch := strings.TrimSpace(repo.Branch)
		if branch == "" {
			return "", fmt.Errorf("cannot track remote for %q: descriptor has no branch", repo.Path)
		}
		if err := it.fetchAndReset(ctx, abs, branch, "origin/"+branch, false); err != nil {
			return "", err
		}
		return it.finish(ctx, abs, opts.GitClean)
	}

	fetchRef := repo.Commit
	resetRef := repo.Commit
	if fetchRef == "" {
		// nothing pinned yet: fall back to the branch tip
		fetchRef = strings.TrimSpace(repo.Branch)
		resetRef = "FETCH_HEAD"
	}
	if fetchRef == "" {
		return "", fmt.Errorf("cannot update %q: descriptor has neither commit nor branch", repo.Path)
	}
	if err := it.fetchAndReset(ctx, abs, fetchRef, resetRef, true); err != nil {
		return "", err
	}

	return it.finish(ctx, abs, opts.GitClean)
}

// Remove deletes the working copy directory tree; absent is a no-op.
func (it *WorkingCopyRepository) Remove(repo entities.Repository, baseDir string) error {
	if err := repo.Validate(); err != nil {
		return err
	}

	abs := it.absPath(repo, baseDir)
	if it.State(repo, baseDir) == entities.WorkingCopyAbsent {
		logger.Debugf("Working copy %s already absent; nothing to remove", abs)
		return nil
	}

	logger.Infof("Removing working copy %s", abs)
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("failed to remove working copy %q: %w", abs, err)
	}
	return nil
}

func (it *WorkingCopyRepository) absPath(repo entities.Repository, baseDir string) string {
	abs, err := filepath.Abs(filepath.Join(baseDir, repo.Path))
	if err != nil {
		return filepath.Join(baseDir, repo.Path)
	}
	return abs
}

// clone performs a shallow, blob-filtered, single-branch clone into abs.
func (it *WorkingCopyRepository) clone(
	ctx context.Context,
	repo entities.Repository,
	abs, parent string,
) error {
	args := []string{"clone"}
	if repo.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(repo.Depth))
	}
	if repo.Branch != "" {
		args = append(args, "--branch", repo.Branch)
	}
	if it.settings.Jobs > 0 {
		args = append(args, "--jobs", strconv.Itoa(it.settings.Jobs))
	}
	args = append(args, "--filter=blob:none", "--single-branch", repo.URL, abs)

	_, err := it.runner.Run(ctx, parent, args...)
	return err
}

// recreate turns a bare tracked directory back into a git working copy in
// place: init, add the remote, and create the local branch. The caller's
// pin step then populates the content. Requires a branch name.
func (it *WorkingCopyRepository) recreate(
	ctx context.Context,
	repo entities.Repository,
	abs string,
) error {
	branch := strings.TrimSpace(repo.Branch)
	if branch == "" {
		return fmt.Errorf("cannot recreate %q: descriptor has no branch", repo.Path)
	}

	if _, err := it.runner.Run(ctx, abs, "init"); err != nil {
		return err
	}
	if _, err := it.runner.Run(ctx, abs, "remote", "add", "origin", repo.URL); err != nil {
		return err
	}
	if _, err := it.runner.Run(ctx, abs, "checkout", "-b", branch); err != nil {
		return err
	}
	return nil
}

// fetchAndReset fetches one ref from origin, hard-resets to the reset ref,
// and cleans untracked files.
func (it *WorkingCopyRepository) fetchAndReset(
	ctx context.Context,
	dir, fetchRef, resetRef string,
	shallow bool,
) error {
	fetchArgs := []string{"fetch"}
	if shallow {
		fetchArgs = append(fetchArgs, "--depth", "1")
	}
	if it.settings.Jobs > 0 {
		fetchArgs = append(fetchArgs, "--jobs", strconv.Itoa(it.settings.Jobs))
	}
	fetchArgs = append(fetchArgs, "origin", fetchRef)

	if _, err := it.runner.Run(ctx, dir, fetchArgs...); err != nil {
		return err
	}
	if _, err := it.runner.Run(ctx, dir, "reset", "--quiet", "--hard", resetRef); err != nil {
		return err
	}
	if _, err := it.runner.Run(ctx, dir, "clean", "-ffd"); err != nil {
		return err
	}
	return nil
}

// finish resolves the resulting pinned commit and optionally strips the git
// metadata, leaving a plain content directory.
func (it *WorkingCopyRepository) finish(
	ctx context.Context,
	abs string,
	gitClean bool,
) (string, error) {
	commit, err := it.runner.Run(ctx, abs, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}

	if gitClean {
		logger.Infof("Stripping git metadata from %s", abs)
		if removeErr := os.RemoveAll(filepath.Join(abs, ".git")); removeErr != nil {
			return "", fmt.Errorf("failed to strip git metadata from %q: %w", abs, removeErr)
		}
	}

	return commit, nil
}
