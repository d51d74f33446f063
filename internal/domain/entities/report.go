package entities

import (
	"sort"
	"time"
)

// Report is the categorized outcome of one scan session. A repository may
// appear in several of Changes, Unpushed, NeedsPull, and Errors at once;
// Clean is mutually exclusive with every other category. Each list is
// sorted by repository name, independent of probe completion order.
type Report struct {
	Changes   []RepositoryResult
	Unpushed  []RepositoryResult
	NeedsPull []RepositoryResult
	Errors    []RepositoryResult
	Clean     []RepositoryResult

	// NoUpstream lists repositories that probed completely but have no
	// tracking branch configured. Their sync state is unknown, so they are
	// neither Clean nor Errors.
	NoUpstream []RepositoryResult

	Stats ReportStats
}

// ReportStats holds the summary counters for one scan.
type ReportStats struct {
	TotalRepositories int // candidates with git metadata, including errored ones
	WithChanges       int
	WithUnpushed      int
	WithRemoteUpdates int
	WithErrors        int
	CleanCount        int
	NoUpstreamCount   int
	Duration          time.Duration
}

// BuildReport folds a completed session into a categorized report. It must
// only be called after the coordinator barrier, when no prober is writing
// anymore. Candidates whose prober never recorded a result are surfaced
// under Errors with StatusUnknown.
func BuildReport(session *ScanSession) *Report {
	report := &Report{}

	for _, result := range session.Results {
		if result.Status == StatusNotARepository {
			continue
		}
		report.Stats.TotalRepositories++
		report.categorize(result)
	}

	for _, candidate := range session.Missing() {
		report.Stats.TotalRepositories++
		report.categorize(UnresolvedResult(candidate))
	}

	for _, list := range []*[]RepositoryResult{
		&report.Changes, &report.Unpushed, &report.NeedsPull,
		&report.Errors, &report.Clean, &report.NoUpstream,
	} {
		sortByName(*list)
	}

	report.Stats.WithChanges = len(report.Changes)
	report.Stats.WithUnpushed = len(report.Unpushed)
	report.Stats.WithRemoteUpdates = len(report.NeedsPull)
	report.Stats.WithErrors = len(report.Errors)
	report.Stats.CleanCount = len(report.Clean)
	report.Stats.NoUpstreamCount = len(report.NoUpstream)
	report.Stats.Duration = session.Duration()

	return report
}

// categorize places one result into every category it belongs to.
func (r *Report) categorize(result RepositoryResult) {
	if result.IsError() {
		r.Errors = append(r.Errors, result)
	}

	// Local change data survives a failed fetch, so FetchError repositories
	// still show up under Changes.
	if result.HasUncommittedChanges {
		r.Changes = append(r.Changes, result)
	}

	if result.Status != StatusComplete {
		return
	}

	if !result.HasUpstream {
		r.NoUpstream = append(r.NoUpstream, result)
		return
	}

	if result.CommitsAhead > 0 {
		r.Unpushed = append(r.Unpushed, result)
	}
	if result.CommitsBehind > 0 {
		r.NeedsPull = append(r.NeedsPull, result)
	}

	if !result.HasUncommittedChanges && result.CommitsAhead == 0 && result.CommitsBehind == 0 {
		r.Clean = append(r.Clean, result)
	}
}

func sortByName(results []RepositoryResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
}
