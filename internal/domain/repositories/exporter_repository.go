package repositories

import (
	"github.com/rafops/gitscout/internal/domain/entities"
)

// ExporterRepository writes a structured scan document for other tooling.
type ExporterRepository interface {
	Export(session *entities.ScanSession, path string) error
}
