package repositories

import (
	"go.uber.org/dig"

	gitRepo "github.com/rafops/gitscout/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewDirectoryScannerRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewProberRepository); err != nil {
		return err
	}
	if err := container.Provide(NewJSONExporterRepository); err != nil {
		return err
	}

	return nil
}
