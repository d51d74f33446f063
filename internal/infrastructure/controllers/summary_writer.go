package controllers

import (
	"fmt"
	"io"
	"time"

	"github.com/rafops/gitscout/internal/domain/entities"
)

const maxFilesShown = 5

// writeSummary prints the categorized report in a stable, name-sorted order.
func writeSummary(w io.Writer, report *entities.Report) {
	fmt.Fprintln(w, "REPOSITORY STATUS SUMMARY")
	fmt.Fprintln(w, "=========================")

	if len(report.Changes) > 0 {
		fmt.Fprintf(w, "\nUncommitted changes (%d):\n", len(report.Changes))
		for _, repo := range report.Changes {
			fmt.Fprintf(w, "  %s (branch: %s)\n", repo.Name, repo.Branch)
			for i, file := range repo.UncommittedFiles {
				if i == maxFilesShown {
					fmt.Fprintf(w, "    ... and %d more files\n", len(repo.UncommittedFiles)-maxFilesShown)
					break
				}
				fmt.Fprintf(w, "    %s\n", file)
			}
		}
	}

	if len(report.Unpushed) > 0 {
		fmt.Fprintf(w, "\nUnpushed commits (%d):\n", len(report.Unpushed))
		for _, repo := range report.Unpushed {
			fmt.Fprintf(w, "  %s (branch: %s): %d commit(s) ahead of remote\n",
				repo.Name, repo.Branch, repo.CommitsAhead)
		}
	}

	if len(report.NeedsPull) > 0 {
		fmt.Fprintf(w, "\nRemote updates available (%d):\n", len(report.NeedsPull))
		for _, repo := range report.NeedsPull {
			fmt.Fprintf(w, "  %s (branch: %s): %d commit(s) behind remote\n",
				repo.Name, repo.Branch, repo.CommitsBehind)
		}
	}

	if len(report.NoUpstream) > 0 {
		fmt.Fprintf(w, "\nNo upstream configured (%d):\n", len(report.NoUpstream))
		for _, repo := range report.NoUpstream {
			fmt.Fprintf(w, "  %s (branch: %s): sync state unknown\n", repo.Name, repo.Branch)
		}
	}

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors (%d):\n", len(report.Errors))
		for _, repo := range report.Errors {
			fmt.Fprintf(w, "  %s: %s\n", repo.Name, repo.Error)
		}
	}

	if len(report.Clean) > 0 {
		fmt.Fprintf(w, "\nClean repositories (%d):\n", len(report.Clean))
		for _, repo := range report.Clean {
			fmt.Fprintf(w, "  %s (branch: %s)\n", repo.Name, repo.Branch)
		}
	}

	stats := report.Stats
	fmt.Fprintln(w, "\nOverall statistics:")
	fmt.Fprintf(w, "  Total repositories: %d\n", stats.TotalRepositories)
	fmt.Fprintf(w, "  With uncommitted changes: %d\n", stats.WithChanges)
	fmt.Fprintf(w, "  With unpushed commits: %d\n", stats.WithUnpushed)
	fmt.Fprintf(w, "  With remote updates: %d\n", stats.WithRemoteUpdates)
	fmt.Fprintf(w, "  Without upstream: %d\n", stats.NoUpstreamCount)
	fmt.Fprintf(w, "  With errors: %d\n", stats.WithErrors)
	fmt.Fprintf(w, "  Clean: %d\n", stats.CleanCount)
	fmt.Fprintf(w, "  Scan duration: %s\n", stats.Duration.Round(time.Millisecond))
}
