//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafops/gitscout/internal/domain/entities"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should return defaults when no file is given", func(t *testing.T) {
		t.Parallel()

		// given
		path := ""

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, 8, settings.Concurrency)
		assert.Equal(t, 30*time.Second, settings.FetchTimeout())
		assert.False(t, settings.SkipFetch)
	})

	t.Run("should load values from a YAML file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gitscout.yaml")
		content := "concurrency: 4\nfetch_timeout_seconds: 10\nskip_fetch: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, 4, settings.Concurrency)
		assert.Equal(t, 10*time.Second, settings.FetchTimeout())
		assert.True(t, settings.SkipFetch)
	})

	t.Run("should let environment variables override file values", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gitscout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: 4\n"), 0o600))
		t.Setenv("GITSCOUT_CONCURRENCY", "16")
		t.Setenv("GITSCOUT_FETCH_TIMEOUT", "5")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, 16, settings.Concurrency)
		assert.Equal(t, 5*time.Second, settings.FetchTimeout())
	})

	t.Run("should ignore malformed environment overrides", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GITSCOUT_CONCURRENCY", "a-lot")

		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, 8, settings.Concurrency)
	})

	t.Run("should reject a concurrency below one", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gitscout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: 0\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "concurrency")
	})

	t.Run("should fail for an unreadable settings file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
	})

	t.Run("should fail for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "gitscout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: [broken\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
	})
}
