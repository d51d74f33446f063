package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rafops/gitscout/internal/domain/entities"
	domainRepos "github.com/rafops/gitscout/internal/domain/repositories"
)

// JSONExporterRepository writes a scan session as a JSON document for other
// tooling to consume.
type JSONExporterRepository struct{}

// NewJSONExporterRepository creates a new JSON exporter.
func NewJSONExporterRepository() domainRepos.ExporterRepository {
	return &JSONExporterRepository{}
}

type exportDocument struct {
	ScanTimestamp string         `json:"scan_timestamp"`
	BasePath      string         `json:"base_path"`
	Repositories  []exportRecord `json:"repositories"`
}

type exportRecord struct {
	Name                  string   `json:"name"`
	Path                  string   `json:"path"`
	CurrentBranch         string   `json:"current_branch"`
	HasUncommittedChanges bool     `json:"has_uncommitted_changes"`
	HasUnpushedCommits    bool     `json:"has_unpushed_commits"`
	HasRemoteUpdates      bool     `json:"has_remote_updates"`
	UncommittedFiles      []string `json:"uncommitted_files"`
	UnpushedCommitsCount  int      `json:"unpushed_commits_count"`
	RemoteCommitsCount    int      `json:"remote_commits_count"`
	Error                 *string  `json:"error"`
}

// Export writes the session to path. Records follow candidate order;
// candidates without git metadata are excluded, matching the report, and
// candidates without a recorded result are exported as unresolved errors.
func (it *JSONExporterRepository) Export(session *entities.ScanSession, path string) error {
	document := exportDocument{
		ScanTimestamp: session.StartedAt.Format(time.RFC3339),
		BasePath:      session.BasePath,
		Repositories:  []exportRecord{},
	}

	for _, candidate := range session.Candidates {
		result, ok := session.Results[candidate.Name]
		if !ok {
			result = entities.UnresolvedResult(candidate)
		}
		if result.Status == entities.StatusNotARepository {
			continue
		}
		document.Repositories = append(document.Repositories, newExportRecord(result))
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export document: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write export file %q: %w", path, writeErr)
	}
	return nil
}

func newExportRecord(result entities.RepositoryResult) exportRecord {
	record := exportRecord{
		Name:                  result.Name,
		Path:                  result.Path,
		CurrentBranch:         result.Branch,
		HasUncommittedChanges: result.HasUncommittedChanges,
		UncommittedFiles:      result.UncommittedFiles,
	}
	if record.UncommittedFiles == nil {
		record.UncommittedFiles = []string{}
	}

	if result.Status == entities.StatusComplete && result.HasUpstream {
		record.HasUnpushedCommits = result.CommitsAhead > 0
		record.HasRemoteUpdates = result.CommitsBehind > 0
		record.UnpushedCommitsCount = result.CommitsAhead
		record.RemoteCommitsCount = result.CommitsBehind
	}

	if result.Error != "" {
		message := result.Error
		record.Error = &message
	}

	return record
}
