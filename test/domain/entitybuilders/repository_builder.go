//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reposync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepositoryBuilder helps create test repository descriptors with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	path   string
	url    string
	branch string
	commit string
	depth  int
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "vendor/example",
		url:         "https://example.com/org/example.git",
		branch:      "main",
		commit:      "",
		depth:       1,
	}
}

// WithPath sets the destination path.
func (b *RepositoryBuilder) WithPath(path string) *RepositoryBuilder {
	b.path = path
	return b
}

// WithURL sets the remote URL.
func (b *RepositoryBuilder) WithURL(url string) *RepositoryBuilder {
	b.url = url
	return b
}

// WithBranch sets the branch.
func (b *RepositoryBuilder) WithBranch(branch string) *RepositoryBuilder {
	b.branch = branch
	return b
}

// WithCommit sets the pinned commit.
func (b *RepositoryBuilder) WithCommit(commit string) *RepositoryBuilder {
	b.commit = commit
	return b
}

// WithDepth sets the clone depth.
func (b *RepositoryBuilder) WithDepth(depth int) *RepositoryBuilder {
	b.depth = depth
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.Repository {
	return entities.Repository{
		Path:   b.path,
		URL:    b.url,
		Branch: b.branch,
		Commit: b.commit,
		Depth:  b.depth,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "vendor/example"
	b.url = "https://example.com/org/example.git"
	b.branch = "main"
	b.commit = ""
	b.depth = 1
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		url:         b.url,
		branch:      b.branch,
		commit:      b.commit,
		depth:       b.depth,
	}
}
