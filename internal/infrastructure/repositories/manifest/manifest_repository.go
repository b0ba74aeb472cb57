// Package manifest implements the YAML manifest store: an ordered list of
// repository descriptors under a top-level "repositories" key, with ${VAR}
// environment interpolation on load.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{(\w+)}`)

// YAMLRepository is the file-backed implementation of ManifestRepository.
type YAMLRepository struct {
	path     string
	manifest entities.Manifest
}

var _ repositories.ManifestRepository = (*YAMLRepository)(nil)

// NewYAMLRepository creates a store for the given manifest path. Nothing is
// read until Load is called.
func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

// Load reads and parses the manifest file. A missing "repositories" key
// yields an empty sequence, not an error.
func (it *YAMLRepository) Load() error {
	data, err := os.ReadFile(it.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", entities.ErrManifestNotFound, it.path)
		}
		return fmt.Errorf("failed to read manifest %q: %w", it.path, err)
	}

	var parsed entities.Manifest
	if unmarshalErr := yaml.Unmarshal(data, &parsed); unmarshalErr != nil {
		return fmt.Errorf("failed to parse manifest %q: %w", it.path, unmarshalErr)
	}

	for i := range parsed.Repositories {
		resolveRepository(&parsed.Repositories[i])
	}

	it.manifest = parsed
	return nil
}

// resolveRepository expands ${VAR} placeholders on every string field of a
// descriptor. Unresolved names keep the literal placeholder and only warn.
func resolveRepository(repo *entities.Repository) {
	repo.Path = resolveEnv(repo.Path)
	repo.URL = resolveEnv(repo.URL)
	repo.Branch = resolveEnv(repo.Branch)
	repo.Commit = resolveEnv(repo.Commit)
}

func resolveEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		logger.Warnf("Environment variable %q is not set; keeping placeholder", varName)
		return match
	})
}

// All returns the descriptors in declaration order.
func (it *YAMLRepository) All() []entities.Repository {
	return it.manifest.Repositories
}

// Find returns the descriptor with the given path, if any.
func (it *YAMLRepository) Find(path string) (entities.Repository, bool) {
	return it.manifest.Find(path)
}

// Add appends a descriptor, rejecting duplicate paths.
func (it *YAMLRepository) Add(repo entities.Repository) error {
	if _, ok := it.manifest.Find(repo.Path); ok {
		return fmt.Errorf("%w: %s", entities.ErrRepositoryExists, repo.Path)
	}
	it.manifest.Repositories = append(it.manifest.Repositories, repo)
	return nil
}

// Remove deletes the descriptor with the given path; absent is a no-op.
func (it *YAMLRepository) Remove(path string) {
	kept := it.manifest.Repositories[:0]
	for _, repo := range it.manifest.Repositories {
		if repo.Path != path {
			kept = append(kept, repo)
		}
	}
	it.manifest.Repositories = kept
}

// UpdateCommit mutates the matching descriptor's commit field in place.
func (it *YAMLRepository) UpdateCommit(path, commit string) bool {
	for i := range it.manifest.Repositories {
		if it.manifest.Repositories[i].Path == path {
			it.manifest.Repositories[i].Commit = commit
			return true
		}
	}
	logger.Warnf("Repository %q not found in manifest; commit not recorded", path)
	return false
}

// Save serializes back to the loaded path.
func (it *YAMLRepository) Save() error {
	return it.SaveTo(it.path)
}

// SaveTo serializes the current contents to an alternate path, preserving
// declaration order. Two-space indentation keeps the file hand-editable.
func (it *YAMLRepository) SaveTo(path string) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&it.manifest); err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	if closeErr := encoder.Close(); closeErr != nil {
		return fmt.Errorf("failed to serialize manifest: %w", closeErr)
	}
	if writeErr := os.WriteFile(path, buf.Bytes(), 0o644); writeErr != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, writeErr)
	}
	return nil
}

// Path returns the manifest file path.
func (it *YAMLRepository) Path() string {
	return it.path
}

// Dir returns the manifest's directory, the base for all working copies.
func (it *YAMLRepository) Dir() string {
	return filepath.Dir(it.path)
}
