package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/rafops/gitscout/internal/domain/entities"
	domainRepos "github.com/rafops/gitscout/internal/domain/repositories"
)

// ProberRepository implements domainRepos.ProberRepository against a local
// git working copy. Local state (repository detection, branch, worktree
// status, upstream configuration) is read through go-git; the remote fetch
// and the ahead/behind counting go through git subprocesses, which reuse
// the caller's credential and transport setup. Every subprocess gets its
// own Dir, so no probe ever touches the process working directory.
type ProberRepository struct{}

// NewProberRepository creates a new git prober.
func NewProberRepository() domainRepos.ProberRepository {
	return &ProberRepository{}
}

// Probe walks the candidate through the probe state machine and returns its
// single terminal result.
func (it *ProberRepository) Probe(
	ctx context.Context,
	candidate entities.Candidate,
	opts entities.ProbeOptions,
) entities.RepositoryResult {
	result := entities.RepositoryResult{
		Name:   candidate.Name,
		Path:   candidate.Path,
		Status: entities.StatusComplete,
	}

	repo, err := gogit.PlainOpen(candidate.Path)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			result.Status = entities.StatusNotARepository
			return result
		}
		result.Status = entities.StatusAccessError
		result.Error = err.Error()
		return result
	}

	result.Branch = currentBranch(repo)

	hasChanges, files, statusErr := uncommittedChanges(repo)
	if statusErr != nil {
		result.Status = entities.StatusAccessError
		result.Error = fmt.Sprintf("worktree status: %v", statusErr)
		return result
	}
	result.HasUncommittedChanges = hasChanges
	result.UncommittedFiles = files

	cfg, cfgErr := repo.Config()
	if cfgErr != nil {
		result.Status = entities.StatusAccessError
		result.Error = fmt.Sprintf("repository config: %v", cfgErr)
		return result
	}

	// Without a remote there is nothing to fetch and no upstream to compare
	// against; the repository completes with an unknown sync state.
	if len(cfg.Remotes) == 0 {
		return result
	}

	if !opts.SkipFetch {
		if fetchErr := fetch(ctx, candidate.Path, opts.FetchTimeout); fetchErr != nil {
			result.Status = entities.StatusFetchError
			result.Error = fetchErr.Error()
			return result
		}
	}

	branchCfg, tracked := cfg.Branches[result.Branch]
	if !tracked || branchCfg.Merge == "" {
		return result
	}

	ahead, behind, countErr := aheadBehind(ctx, candidate.Path)
	if countErr != nil {
		// Upstream is configured but does not resolve (e.g. the remote
		// branch was deleted). Sync state stays unknown.
		return result
	}

	result.HasUpstream = true
	result.CommitsAhead = ahead
	result.CommitsBehind = behind
	return result
}

// currentBranch resolves the checked-out branch name. A detached HEAD maps
// to the BranchDetached sentinel; an unborn branch (repository without
// commits) resolves through the symbolic HEAD reference.
func currentBranch(repo *gogit.Repository) string {
	head, err := repo.Head()
	if err != nil {
		if ref, refErr := repo.Reference(plumbing.HEAD, false); refErr == nil &&
			ref.Type() == plumbing.SymbolicReference {
			return ref.Target().Short()
		}
		return entities.BranchUnknown
	}
	if !head.Name().IsBranch() {
		return entities.BranchDetached
	}
	return head.Name().Short()
}

// uncommittedChanges reports whether the worktree differs from HEAD or holds
// staged/untracked paths, together with porcelain-style descriptors for each
// path, sorted for deterministic output.
func uncommittedChanges(repo *gogit.Repository) (bool, []string, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return false, nil, nil
		}
		return false, nil, err
	}

	status, err := worktree.Status()
	if err != nil {
		return false, nil, err
	}
	if status.IsClean() {
		return false, nil, nil
	}

	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	files := make([]string, 0, len(paths))
	for _, path := range paths {
		fileStatus := status[path]
		files = append(files, fmt.Sprintf("%c%c %s", fileStatus.Staging, fileStatus.Worktree, path))
	}

	return true, files, nil
}

// fetch updates the remote refs for the repository at path, bounded by the
// given timeout so a hung network call cannot stall the scan barrier.
func fetch(ctx context.Context, path string, timeout time.Duration) error {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(fetchCtx, "git", "fetch", "--quiet")
	cmd.Dir = path

	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("fetch timed out after %s", timeout)
		}
		return fmt.Errorf("git fetch: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// aheadBehind counts commits reachable only locally (ahead) and only on the
// upstream (behind) for the checked-out branch.
func aheadBehind(ctx context.Context, path string) (int, int, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	cmd.Dir = path

	output, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("git rev-list: %w", err)
	}

	return parseAheadBehind(string(output))
}

// parseAheadBehind parses "ahead<TAB>behind" rev-list output.
func parseAheadBehind(output string) (int, int, error) {
	parts := strings.Fields(strings.TrimSpace(output))
	if len(parts) != 2 { //nolint:mnd // ahead + behind
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", output)
	}

	ahead, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ahead count %q: %w", parts[0], err)
	}
	behind, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid behind count %q: %w", parts[1], err)
	}

	return ahead, behind, nil
}
