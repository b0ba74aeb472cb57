package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/reposync/internal/domain/repositories"
	"github.com/rios0rios0/reposync/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/reposync/internal/infrastructure/repositories/gitmodules"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register infrastructure constructors
	if err := container.Provide(git.NewShellRunner); err != nil {
		return err
	}
	if err := container.Provide(git.NewWorkingCopyRepository); err != nil {
		return err
	}
	if err := container.Provide(gitmodules.NewReader); err != nil {
		return err
	}
	if err := container.Provide(NewConsoleConfirmer); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *git.ShellRunner) domainRepos.GitRunner {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *git.WorkingCopyRepository) domainRepos.WorkingCopyRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gitmodules.Reader) domainRepos.SubmoduleRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ConsoleConfirmer) domainRepos.Confirmer {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
