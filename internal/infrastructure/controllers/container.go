package controllers

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewScanController); err != nil {
		return err
	}

	return nil
}
