package repositories

import (
	"context"

	"github.com/rafops/gitscout/internal/domain/entities"
)

// ProberRepository determines the synchronization state of one candidate.
type ProberRepository interface {
	// Probe produces exactly one terminal result for the candidate. It is a
	// total function: every failure mode maps to an error status inside the
	// result, never to a panic or a missing record. Implementations must not
	// mutate process-global state such as the working directory, because
	// probes for different candidates run concurrently.
	Probe(ctx context.Context, candidate entities.Candidate, opts entities.ProbeOptions) entities.RepositoryResult
}
