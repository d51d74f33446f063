package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rafops/gitscout/internal/domain/entities"
	"github.com/rafops/gitscout/internal/domain/repositories"
)

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) (*entities.ScanSession, error)
}

// ScanOptions holds runtime options for a single scan run.
type ScanOptions struct {
	BasePath string
	Verbose  bool
}

// ScanCommand coordinates one scan: discover candidates, probe them on a
// bounded worker pool, wait for the barrier, and fold the results into a
// session. No prober failure ever aborts the others; each worker owns its
// candidate's result and nothing else is shared between them.
type ScanCommand struct {
	scanner repositories.ScannerRepository
	prober  repositories.ProberRepository
}

// NewScanCommand creates a new ScanCommand with the given repositories.
func NewScanCommand(
	scanner repositories.ScannerRepository,
	prober repositories.ProberRepository,
) *ScanCommand {
	return &ScanCommand{
		scanner: scanner,
		prober:  prober,
	}
}

// Execute runs the full scan and returns the populated session.
func (it *ScanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) (*entities.ScanSession, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	candidates, err := it.scanner.ListCandidates(opts.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates in %q: %w", opts.BasePath, err)
	}

	session := entities.NewScanSession(opts.BasePath, candidates)
	session.StartedAt = time.Now()

	logger.Infof("Scanning %d candidate directories in %s", len(candidates), opts.BasePath)

	probeOpts := entities.ProbeOptions{
		FetchTimeout: settings.FetchTimeout(),
		SkipFetch:    settings.SkipFetch,
	}

	jobs := make(chan entities.Candidate)
	results := make(chan entities.RepositoryResult, len(candidates))

	workers := settings.Concurrency
	if workers > len(candidates) {
		workers = len(candidates)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for candidate := range jobs {
				result := it.prober.Probe(ctx, candidate, probeOpts)
				logger.Debugf("Probed %s: status=%s branch=%s", result.Name, result.Status, result.Branch)
				results <- result
			}
		}()
	}

	for _, candidate := range candidates {
		jobs <- candidate
	}
	close(jobs)

	// Barrier: aggregation must not start while any prober is running.
	wg.Wait()
	close(results)

	for result := range results {
		session.Record(result)
	}
	session.FinishedAt = time.Now()

	logger.Infof("Scanned %d candidates in %s", len(candidates), session.Duration().Round(time.Millisecond))
	return session, nil
}
