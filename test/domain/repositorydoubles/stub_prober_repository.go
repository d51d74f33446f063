//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"
	"time"

	"github.com/rafops/gitscout/internal/domain/entities"
	"github.com/rafops/gitscout/internal/domain/repositories"
)

// SpyProberRepository implements repositories.ProberRepository as a
// configurable spy. Probes for unknown names fall back to a Complete result
// with an upstream and zero counts. The spy is safe for concurrent use and
// tracks the maximum number of probes that ran at the same time, so tests
// can assert the worker-pool bound.
type SpyProberRepository struct {
	// --- configuration ---
	ResultsByName map[string]entities.RepositoryResult
	Delay         time.Duration // simulated probe latency

	// --- spy state ---
	mu            sync.Mutex
	ProbedNames   []string
	ReceivedOpts  []entities.ProbeOptions
	active        int
	MaxConcurrent int
}

var _ repositories.ProberRepository = (*SpyProberRepository)(nil)

func (p *SpyProberRepository) Probe(
	_ context.Context,
	candidate entities.Candidate,
	opts entities.ProbeOptions,
) entities.RepositoryResult {
	p.enter(candidate.Name, opts)
	defer p.leave()

	if p.Delay > 0 {
		time.Sleep(p.Delay)
	}

	if result, ok := p.ResultsByName[candidate.Name]; ok {
		result.Name = candidate.Name
		result.Path = candidate.Path
		return result
	}

	return entities.RepositoryResult{
		Name:        candidate.Name,
		Path:        candidate.Path,
		Branch:      "main",
		HasUpstream: true,
		Status:      entities.StatusComplete,
	}
}

func (p *SpyProberRepository) enter(name string, opts entities.ProbeOptions) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ProbedNames = append(p.ProbedNames, name)
	p.ReceivedOpts = append(p.ReceivedOpts, opts)
	p.active++
	if p.active > p.MaxConcurrent {
		p.MaxConcurrent = p.active
	}
}

func (p *SpyProberRepository) leave() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active--
}

// StubScannerRepository implements repositories.ScannerRepository with a
// fixed candidate list.
type StubScannerRepository struct {
	Candidates []entities.Candidate
	Err        error
	// spy: base paths that were requested
	ListedPaths []string
}

var _ repositories.ScannerRepository = (*StubScannerRepository)(nil)

func (s *StubScannerRepository) ListCandidates(basePath string) ([]entities.Candidate, error) {
	s.ListedPaths = append(s.ListedPaths, basePath)
	return s.Candidates, s.Err
}

// SpyExporterRepository implements repositories.ExporterRepository and
// records what was exported.
type SpyExporterRepository struct {
	Err error
	// spy: inputs received
	Sessions []*entities.ScanSession
	Paths    []string
}

var _ repositories.ExporterRepository = (*SpyExporterRepository)(nil)

func (e *SpyExporterRepository) Export(session *entities.ScanSession, path string) error {
	e.Sessions = append(e.Sessions, session)
	e.Paths = append(e.Paths, path)
	return e.Err
}
