//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rafops/gitscout/internal/domain/entities"
)

// RepositoryResultBuilder helps create test results with a fluent interface.
type RepositoryResultBuilder struct {
	*testkit.BaseBuilder
	name        string
	path        string
	branch      string
	hasChanges  bool
	files       []string
	hasUpstream bool
	ahead       int
	behind      int
	status      entities.Status
	errMessage  string
}

// NewRepositoryResultBuilder creates a builder for a clean, complete result.
func NewRepositoryResultBuilder() *RepositoryResultBuilder {
	return &RepositoryResultBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-repo",
		path:        "/tmp/test-repo",
		branch:      "main",
		hasUpstream: true,
		status:      entities.StatusComplete,
	}
}

// WithName sets the repository name.
func (b *RepositoryResultBuilder) WithName(name string) *RepositoryResultBuilder {
	b.name = name
	return b
}

// WithPath sets the filesystem path.
func (b *RepositoryResultBuilder) WithPath(path string) *RepositoryResultBuilder {
	b.path = path
	return b
}

// WithBranch sets the current branch.
func (b *RepositoryResultBuilder) WithBranch(branch string) *RepositoryResultBuilder {
	b.branch = branch
	return b
}

// WithChanges marks uncommitted changes with the given descriptors.
func (b *RepositoryResultBuilder) WithChanges(files ...string) *RepositoryResultBuilder {
	b.hasChanges = true
	b.files = files
	return b
}

// WithoutUpstream clears the tracking branch.
func (b *RepositoryResultBuilder) WithoutUpstream() *RepositoryResultBuilder {
	b.hasUpstream = false
	b.ahead = 0
	b.behind = 0
	return b
}

// WithAhead sets the unpushed commit count.
func (b *RepositoryResultBuilder) WithAhead(count int) *RepositoryResultBuilder {
	b.ahead = count
	return b
}

// WithBehind sets the pending remote commit count.
func (b *RepositoryResultBuilder) WithBehind(count int) *RepositoryResultBuilder {
	b.behind = count
	return b
}

// WithStatus sets the terminal status.
func (b *RepositoryResultBuilder) WithStatus(status entities.Status) *RepositoryResultBuilder {
	b.status = status
	return b
}

// WithError sets the error message.
func (b *RepositoryResultBuilder) WithError(message string) *RepositoryResultBuilder {
	b.errMessage = message
	return b
}

// Build creates the result (satisfies testkit.Builder interface).
func (b *RepositoryResultBuilder) Build() interface{} {
	return b.BuildResult()
}

// BuildResult creates the result with a concrete return type.
func (b *RepositoryResultBuilder) BuildResult() entities.RepositoryResult {
	return entities.RepositoryResult{
		Name:                  b.name,
		Path:                  b.path,
		Branch:                b.branch,
		HasUncommittedChanges: b.hasChanges,
		UncommittedFiles:      b.files,
		HasUpstream:           b.hasUpstream,
		CommitsAhead:          b.ahead,
		CommitsBehind:         b.behind,
		Status:                b.status,
		Error:                 b.errMessage,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryResultBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-repo"
	b.path = "/tmp/test-repo"
	b.branch = "main"
	b.hasChanges = false
	b.files = nil
	b.hasUpstream = true
	b.ahead = 0
	b.behind = 0
	b.status = entities.StatusComplete
	b.errMessage = ""
	return b
}

// Clone creates a deep copy of the RepositoryResultBuilder.
func (b *RepositoryResultBuilder) Clone() testkit.Builder {
	files := make([]string, len(b.files))
	copy(files, b.files)
	return &RepositoryResultBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		path:        b.path,
		branch:      b.branch,
		hasChanges:  b.hasChanges,
		files:       files,
		hasUpstream: b.hasUpstream,
		ahead:       b.ahead,
		behind:      b.behind,
		status:      b.status,
		errMessage:  b.errMessage,
	}
}
