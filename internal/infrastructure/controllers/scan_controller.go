package controllers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rafops/gitscout/internal/domain/commands"
	"github.com/rafops/gitscout/internal/domain/entities"
	"github.com/rafops/gitscout/internal/domain/repositories"
)

// ScanController handles the root command: validate the base directory,
// run the scan, print the categorized summary, and optionally export JSON.
type ScanController struct {
	command  commands.Scan
	exporter repositories.ExporterRepository
}

// NewScanController creates a new ScanController.
func NewScanController(
	command commands.Scan,
	exporter repositories.ExporterRepository,
) *ScanController {
	return &ScanController{
		command:  command,
		exporter: exporter,
	}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "gitscout <base-dir>",
		Short: "Report uncommitted, unpushed, and behind-remote state across repositories",
		Long: `Scan every immediate subdirectory of a base directory and report,
per git repository, uncommitted changes, unpushed commits, and pending
remote updates.

Repositories are probed concurrently on a bounded worker pool; a failure
in one repository never aborts the others. Per-repository errors appear
in the summary and do not affect the exit code.`,
	}
}

// Execute runs the scan. It returns an error only for run-level failures
// (invalid base directory, broken settings, export failure); per-repository
// problems surface in the report instead.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonPath, _ := cmd.Flags().GetString("json")

	settings, err := it.loadSettings(cmd)
	if err != nil {
		return err
	}

	basePath, err := resolveBasePath(args[0])
	if err != nil {
		return err
	}

	session, err := it.command.Execute(ctx, settings, commands.ScanOptions{
		BasePath: basePath,
		Verbose:  verbose,
	})
	if err != nil {
		return err
	}

	report := entities.BuildReport(session)
	writeSummary(cmd.OutOrStdout(), report)

	if jsonPath != "" {
		if exportErr := it.exporter.Export(session, jsonPath); exportErr != nil {
			return exportErr
		}
		logger.Infof("Results exported to %s", jsonPath)
	}

	return nil
}

// loadSettings resolves the settings file and applies CLI flag overrides.
func (it *ScanController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = entities.FindSettingsFile()
	}
	if cfgPath != "" {
		logger.Debugf("Using settings file: %s", cfgPath)
	}

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, err
	}

	if concurrency, _ := cmd.Flags().GetInt("concurrency"); concurrency > 0 {
		settings.Concurrency = concurrency
	}
	if timeout, _ := cmd.Flags().GetDuration("fetch-timeout"); timeout > 0 {
		seconds := int(timeout.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		settings.FetchTimeoutSeconds = seconds
	}
	if noFetch, _ := cmd.Flags().GetBool("no-fetch"); noFetch {
		settings.SkipFetch = true
	}

	return settings, nil
}

// resolveBasePath expands a leading "~" and verifies the path is an
// existing directory.
func resolveBasePath(raw string) (string, error) {
	expanded, err := expandHome(raw)
	if err != nil {
		return "", err
	}

	info, statErr := os.Stat(expanded)
	if statErr != nil {
		return "", fmt.Errorf("base path %q does not exist", expanded)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("base path %q is not a directory", expanded)
	}

	return expanded, nil
}

// expandHome rewrites "~" and "~/..." paths to the caller's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %q: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
