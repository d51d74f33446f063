package internal

import (
	"go.uber.org/dig"

	"github.com/rafops/gitscout/internal/domain/commands"
	"github.com/rafops/gitscout/internal/domain/entities"
	"github.com/rafops/gitscout/internal/infrastructure/controllers"
	"github.com/rafops/gitscout/internal/infrastructure/repositories"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	return nil
}
