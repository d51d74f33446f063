package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rafops/gitscout/internal/infrastructure/controllers"
)

const version = "1.0.0"

func buildRootCommand(scanController *controllers.ScanController) *cobra.Command {
	bind := scanController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:     bind.Use,
		Short:   bind.Short,
		Long:    bind.Long,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return scanController.Execute(command, args)
		},
		SilenceUsage: true,
	}

	// Registering the version flag up front gives it the -v shorthand;
	// Cobra only adds its own --version flag when none exists.
	cmd.Flags().BoolP("version", "v", false, "version for gitscout")

	cmd.Flags().StringP("config", "c", "",
		"Path to settings file (default: auto-detect)")
	cmd.Flags().String("json", "",
		"Export structured results to the given JSON file")
	cmd.Flags().Int("concurrency", 0,
		"Number of repositories probed in parallel (overrides settings)")
	cmd.Flags().Duration("fetch-timeout", 0,
		"Per-repository remote fetch timeout (overrides settings)")
	cmd.Flags().Bool("no-fetch", false,
		"Skip the remote fetch; compare against last-fetched remote refs")
	cmd.Flags().Bool("verbose", false,
		"Enable verbose output")

	return cmd
}

func main() {
	_ = godotenv.Load()

	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	scanController := injectScanController()
	rootCmd := buildRootCommand(scanController)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Error executing 'gitscout': %s", err)
	}
}
