package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrReleaseAbandonedOrdersCommandIsNotConstructed = errors.New(
	"ReleaseAbandonedOrdersCommand must be created via NewReleaseAbandonedOrdersCommand constructor",
)

// ReleaseAbandonedOrdersCommand requests cancellation of every pending, unpaid
// order created before the cutoff, returning their reservations to stock.
type ReleaseAbandonedOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewReleaseAbandonedOrdersCommand creates a command with the abandonment
// cutoff. Orders created before this instant are considered abandoned.
func NewReleaseAbandonedOrdersCommand(cutoff time.Time) (ReleaseAbandonedOrdersCommand, error) {
	if cutoff.IsZero() {
		return ReleaseAbandonedOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ReleaseAbandonedOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseAbandonedOrdersCommandIsNotConstructed)
}

// Cutoff returns the abandonment cutoff instant.
func (c ReleaseAbandonedOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
