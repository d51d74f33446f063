package entities

import "time"

// Status is the terminal outcome of probing a single candidate directory.
type Status string

const (
	// StatusComplete means every probe step finished; sync fields are populated.
	StatusComplete Status = "complete"
	// StatusNotARepository means the candidate has no git metadata and is
	// excluded from every report category.
	StatusNotARepository Status = "not_a_repository"
	// StatusAccessError means the candidate could not be read or opened.
	StatusAccessError Status = "access_error"
	// StatusFetchError means the remote fetch failed or timed out; local
	// change data gathered before the fetch is still reported.
	StatusFetchError Status = "fetch_error"
	// StatusUnknown marks a candidate that never produced a result record.
	StatusUnknown Status = "unknown"
)

// Branch sentinels for repositories without a regular branch checkout.
const (
	BranchDetached = "(detached HEAD)"
	BranchUnknown  = "unknown"
)

// Candidate is one immediate subdirectory of the base path, before probing.
type Candidate struct {
	Name string // directory base name, the result key
	Path string // absolute filesystem location
}

// RepositoryResult is the single terminal record a prober produces for one
// candidate. CommitsAhead and CommitsBehind are meaningful only when
// Status is StatusComplete and HasUpstream is true; a repository without a
// configured upstream has an unknown sync state, never a zero one.
type RepositoryResult struct {
	Name                  string
	Path                  string
	Branch                string
	HasUncommittedChanges bool
	UncommittedFiles      []string // porcelain-style change descriptors
	HasUpstream           bool
	CommitsAhead          int
	CommitsBehind         int
	Status                Status
	Error                 string // set iff Status is an error variant
}

// IsError reports whether the result ended in an error status.
func (r RepositoryResult) IsError() bool {
	return r.Status == StatusAccessError || r.Status == StatusFetchError || r.Status == StatusUnknown
}

// UnresolvedResult synthesizes the error record for a candidate whose prober
// never recorded a result, so reports and exports account for every candidate.
func UnresolvedResult(candidate Candidate) RepositoryResult {
	return RepositoryResult{
		Name:   candidate.Name,
		Path:   candidate.Path,
		Status: StatusUnknown,
		Error:  "no result recorded for this repository",
	}
}

// ProbeOptions holds runtime options passed to the prober for each candidate.
type ProbeOptions struct {
	FetchTimeout time.Duration // bounds the remote fetch call
	SkipFetch    bool
}
