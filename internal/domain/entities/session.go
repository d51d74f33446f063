package entities

import "time"

// ScanSession owns the full set of probe results for one scan run. It is
// created at scan start, populated by the post-barrier fold, consumed once
// by the report aggregator, and then discarded.
type ScanSession struct {
	BasePath   string
	StartedAt  time.Time
	FinishedAt time.Time
	Candidates []Candidate
	Results    map[string]RepositoryResult
}

// NewScanSession creates a session for the given base path and candidate set.
func NewScanSession(basePath string, candidates []Candidate) *ScanSession {
	return &ScanSession{
		BasePath:   basePath,
		Candidates: candidates,
		Results:    make(map[string]RepositoryResult, len(candidates)),
	}
}

// Record stores the terminal result for one candidate. Keys are disjoint by
// construction (one prober per candidate), so a second write for the same
// name would indicate a coordinator bug and simply overwrites.
func (s *ScanSession) Record(result RepositoryResult) {
	s.Results[result.Name] = result
}

// Missing returns the candidates that never produced a result record, in
// candidate order. The aggregator reports these as unresolved errors rather
// than silently dropping them.
func (s *ScanSession) Missing() []Candidate {
	var missing []Candidate
	for _, candidate := range s.Candidates {
		if _, ok := s.Results[candidate.Name]; !ok {
			missing = append(missing, candidate)
		}
	}
	return missing
}

// Duration returns the wall-clock time of the scan.
func (s *ScanSession) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
