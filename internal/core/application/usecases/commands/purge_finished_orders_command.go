package commands

import (
	"errors"
	"time"

	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

var ErrPurgeFinishedOrdersCommandIsNotConstructed = errors.New(
	"PurgeFinishedOrdersCommand must be created via NewPurgeFinishedOrdersCommand constructor",
)

// PurgeFinishedOrdersCommand removes Delivered and Cancelled orders that have
// not changed for longer than the retention period.
//
// Example:
//
//	cmd, _ := NewPurgeFinishedOrdersCommand(24 * time.Hour)
//	purged, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("purge failed: %v", err)
//	}
//	log.Printf("purged %d orders", len(purged))
type PurgeFinishedOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration
	cutoff    time.Time

	guard guard.ConstructorGuard
}

// NewPurgeFinishedOrdersCommand creates a purge command. The cutoff is fixed
// when the command is created: orders last updated before now - retention are removed.
func NewPurgeFinishedOrdersCommand(retention time.Duration) (PurgeFinishedOrdersCommand, error) {
	if retention < 0 {
		return PurgeFinishedOrdersCommand{}, errs.NewValueIsOutOfRangeError(
			"retention", retention, time.Duration(0), "unbounded")
	}

	return PurgeFinishedOrdersCommand{
		retention: retention,
		cutoff:    time.Now().UTC().Add(-retention),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeFinishedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeFinishedOrdersCommandIsNotConstructed)
}

// Retention returns how long finished orders are kept.
func (c PurgeFinishedOrdersCommand) Retention() time.Duration {
	return c.retention
}

// Cutoff returns the instant before which finished orders are removed.
func (c PurgeFinishedOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
