//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rafops/gitscout/internal/domain/commands"
	"github.com/rafops/gitscout/internal/domain/entities"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	Session *entities.ScanSession
	Err     error
	// spy: inputs received
	ReceivedSettings []*entities.Settings
	ReceivedOpts     []commands.ScanOptions
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (c *StubScanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ScanOptions,
) (*entities.ScanSession, error) {
	c.ReceivedSettings = append(c.ReceivedSettings, settings)
	c.ReceivedOpts = append(c.ReceivedOpts, opts)
	return c.Session, c.Err
}
