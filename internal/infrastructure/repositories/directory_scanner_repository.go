package repositories

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rafops/gitscout/internal/domain/entities"
	domainRepos "github.com/rafops/gitscout/internal/domain/repositories"
)

// DirectoryScannerRepository lists the immediate subdirectories of a base
// path as scan candidates.
type DirectoryScannerRepository struct{}

// NewDirectoryScannerRepository creates a new directory scanner.
func NewDirectoryScannerRepository() domainRepos.ScannerRepository {
	return &DirectoryScannerRepository{}
}

// ListCandidates returns every immediate subdirectory of basePath, sorted
// lexicographically. os.ReadDir already returns entries sorted by name, so
// candidate order is deterministic across runs.
func (it *DirectoryScannerRepository) ListCandidates(basePath string) ([]entities.Candidate, error) {
	absBase, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid base path %q: %w", basePath, err)
	}

	entries, err := os.ReadDir(absBase)
	if err != nil {
		return nil, fmt.Errorf("failed to read base directory %q: %w", absBase, err)
	}

	var candidates []entities.Candidate
	for _, entry := range entries {
		path := filepath.Join(absBase, entry.Name())
		if !isDirectory(entry, path) {
			continue
		}
		candidates = append(candidates, entities.Candidate{
			Name: entry.Name(),
			Path: path,
		})
	}

	return candidates, nil
}

// isDirectory reports whether the entry is a directory, following symlinks
// so a linked repository still gets scanned. Broken links are excluded.
func isDirectory(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
