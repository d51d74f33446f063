package repositories

import (
	"github.com/rafops/gitscout/internal/domain/entities"
)

// ScannerRepository enumerates the candidate repositories under a base path.
type ScannerRepository interface {
	// ListCandidates returns the immediate subdirectories of basePath,
	// sorted lexicographically by name. Non-directory entries are excluded.
	ListCandidates(basePath string) ([]entities.Candidate, error)
}
