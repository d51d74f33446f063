//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafops/gitscout/internal/domain/commands"
	"github.com/rafops/gitscout/internal/domain/entities"
	"github.com/rafops/gitscout/test/domain/entitybuilders"
	"github.com/rafops/gitscout/test/domain/repositorydoubles"
)

func testSettings(concurrency int) *entities.Settings {
	return &entities.Settings{
		Concurrency:         concurrency,
		FetchTimeoutSeconds: 30,
	}
}

func candidates(names ...string) []entities.Candidate {
	result := make([]entities.Candidate, 0, len(names))
	for _, name := range names {
		result = append(result, entities.Candidate{Name: name, Path: "/tmp/base/" + name})
	}
	return result
}

func TestScanCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should record exactly one result per candidate before returning", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &repositorydoubles.StubScannerRepository{
			Candidates: candidates("a", "b", "c", "d", "e"),
		}
		prober := &repositorydoubles.SpyProberRepository{}
		command := commands.NewScanCommand(scanner, prober)

		// when
		session, err := command.Execute(context.Background(), testSettings(3), commands.ScanOptions{
			BasePath: "/tmp/base",
		})

		// then
		require.NoError(t, err)
		assert.Len(t, session.Results, 5)
		assert.Empty(t, session.Missing())
		assert.Len(t, prober.ProbedNames, 5)
	})

	t.Run("should never run more probers than the configured concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &repositorydoubles.StubScannerRepository{
			Candidates: candidates("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"),
		}
		prober := &repositorydoubles.SpyProberRepository{Delay: 20 * time.Millisecond}
		command := commands.NewScanCommand(scanner, prober)

		// when
		_, err := command.Execute(context.Background(), testSettings(3), commands.ScanOptions{
			BasePath: "/tmp/base",
		})

		// then
		require.NoError(t, err)
		assert.LessOrEqual(t, prober.MaxConcurrent, 3)
		assert.Positive(t, prober.MaxConcurrent)
	})

	t.Run("should isolate one repository's error from the others", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &repositorydoubles.StubScannerRepository{
			Candidates: candidates("bad", "good"),
		}
		prober := &repositorydoubles.SpyProberRepository{
			ResultsByName: map[string]entities.RepositoryResult{
				"bad": entitybuilders.NewRepositoryResultBuilder().
					WithName("bad").
					WithStatus(entities.StatusFetchError).
					WithError("fetch timed out after 30s").
					BuildResult(),
			},
		}
		command := commands.NewScanCommand(scanner, prober)

		// when
		session, err := command.Execute(context.Background(), testSettings(2), commands.ScanOptions{
			BasePath: "/tmp/base",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.StatusFetchError, session.Results["bad"].Status)
		assert.Equal(t, entities.StatusComplete, session.Results["good"].Status)
	})

	t.Run("should propagate a scanner failure", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &repositorydoubles.StubScannerRepository{
			Err: errors.New("permission denied"),
		}
		prober := &repositorydoubles.SpyProberRepository{}
		command := commands.NewScanCommand(scanner, prober)

		// when
		session, err := command.Execute(context.Background(), testSettings(2), commands.ScanOptions{
			BasePath: "/tmp/base",
		})

		// then
		require.Error(t, err)
		assert.Nil(t, session)
		assert.Empty(t, prober.ProbedNames)
	})

	t.Run("should complete immediately for an empty base directory", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &repositorydoubles.StubScannerRepository{}
		prober := &repositorydoubles.SpyProberRepository{}
		command := commands.NewScanCommand(scanner, prober)

		// when
		session, err := command.Execute(context.Background(), testSettings(4), commands.ScanOptions{
			BasePath: "/tmp/base",
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, session.Results)
		assert.Empty(t, prober.ProbedNames)
		assert.False(t, session.FinishedAt.Before(session.StartedAt))
	})

	t.Run("should pass the probe options through to every prober", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &repositorydoubles.StubScannerRepository{Candidates: candidates("a", "b")}
		prober := &repositorydoubles.SpyProberRepository{}
		command := commands.NewScanCommand(scanner, prober)
		settings := &entities.Settings{
			Concurrency:         2,
			FetchTimeoutSeconds: 7,
			SkipFetch:           true,
		}

		// when
		_, err := command.Execute(context.Background(), settings, commands.ScanOptions{
			BasePath: "/tmp/base",
		})

		// then
		require.NoError(t, err)
		require.Len(t, prober.ReceivedOpts, 2)
		for _, opts := range prober.ReceivedOpts {
			assert.Equal(t, 7*time.Second, opts.FetchTimeout)
			assert.True(t, opts.SkipFetch)
		}
	})

	t.Run("should yield identical category membership across two runs", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &repositorydoubles.StubScannerRepository{
			Candidates: candidates("a", "b", "c"),
		}
		prober := &repositorydoubles.SpyProberRepository{
			ResultsByName: map[string]entities.RepositoryResult{
				"b": entitybuilders.NewRepositoryResultBuilder().
					WithName("b").WithChanges("?? x").BuildResult(),
			},
			Delay: 5 * time.Millisecond,
		}
		command := commands.NewScanCommand(scanner, prober)

		// when
		firstSession, err := command.Execute(context.Background(), testSettings(3), commands.ScanOptions{
			BasePath: "/tmp/base",
		})
		require.NoError(t, err)
		secondSession, err := command.Execute(context.Background(), testSettings(3), commands.ScanOptions{
			BasePath: "/tmp/base",
		})
		require.NoError(t, err)

		// then
		firstReport := entities.BuildReport(firstSession)
		secondReport := entities.BuildReport(secondSession)
		assert.Equal(t, firstReport.Changes, secondReport.Changes)
		assert.Equal(t, firstReport.Clean, secondReport.Clean)
		assert.Equal(t, firstReport.Errors, secondReport.Errors)
	})
}
