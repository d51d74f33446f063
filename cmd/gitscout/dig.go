package main

import (
	"go.uber.org/dig"

	"github.com/rafops/gitscout/internal"
	"github.com/rafops/gitscout/internal/infrastructure/controllers"
)

func injectScanController() *controllers.ScanController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var scanController *controllers.ScanController
	if err := container.Invoke(func(sc *controllers.ScanController) {
		scanController = sc
	}); err != nil {
		panic(err)
	}

	return scanController
}
