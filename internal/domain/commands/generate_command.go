package commands

import (
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
	"github.com/rios0rios0/reposync/internal/infrastructure/repositories/manifest"
)

// defaultGenerateDepth is the clone depth recorded for generated entries.
const defaultGenerateDepth = 1

// Generate is the interface for the generate command.
type Generate interface {
	Execute(opts GenerateOptions) error
}

// GenerateOptions holds the input and output paths for manifest generation.
type GenerateOptions struct {
	Dir            string // superproject directory, used to resolve pins
	GitmodulesPath string
	OutputPath     string
}

// GenerateCommand writes a fresh manifest from a native .gitmodules file,
// bypassing any existing manifest entirely.
type GenerateCommand struct {
	submodules repositories.SubmoduleRepository
}

var _ Generate = (*GenerateCommand)(nil)

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(submodules repositories.SubmoduleRepository) *GenerateCommand {
	return &GenerateCommand{submodules: submodules}
}

// Execute reads the submodule declarations and writes one descriptor per
// entry, sorted by path for a stable output file.
func (it *GenerateCommand) Execute(opts GenerateOptions) error {
	submodules, err := it.submodules.List(opts.Dir, opts.GitmodulesPath)
	if err != nil {
		return err
	}

	sort.Slice(submodules, func(i, j int) bool {
		return submodules[i].Path < submodules[j].Path
	})

	out := manifest.NewYAMLRepository(opts.OutputPath)
	for _, sub := range submodules {
		if addErr := out.Add(entities.Repository{
			Path:   sub.Path,
			URL:    sub.URL,
			Branch: sub.Branch,
			Commit: sub.Commit,
			Depth:  defaultGenerateDepth,
		}); addErr != nil {
			logger.Warnf("Skipping duplicate submodule path %q", sub.Path)
		}
	}

	if saveErr := out.Save(); saveErr != nil {
		return saveErr
	}

	logger.Infof("Generated %s with %d repositories", opts.OutputPath, len(submodules))
	return nil
}
