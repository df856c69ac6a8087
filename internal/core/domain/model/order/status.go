package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing ──┬──> Shipped ──> Delivered
//	          │        │        │
//	          │        ▼        │
//	          ├──> Cancelled    │
//	          └─────────────────┘
//	      (pending may ship directly)
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status. Inventory for every line item is reserved
	// while the order is pending; the order can still be deleted.
	Pending

	// Processing indicates payment has been confirmed and the order is being
	// prepared for shipment. Reservations continue to be held.
	Processing

	// Shipped indicates the order left the warehouse. Entering this status
	// consumes the reservations: stock is permanently deducted.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned or rejected. Entering this
	// status releases every reservation. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Processing:    "processing",
		Shipped:       "shipped",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// statusTransitions is the explicit transition table. A status maps to the set
// of statuses it may move to; anything absent is rejected.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Shipped, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a status from its lowercase string representation.
// Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Processing, Shipped, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status. It implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo checks whether moving from the current status to next is
// allowed by the transition table, without performing the transition.
//
// Returns an InvalidStateError when the edge is not in the table. In
// particular Cancelled -> Cancelled is rejected, so an order can never be
// cancelled twice and release its inventory twice.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewInvalidStateError(
		fmt.Sprintf("transition to %s", next),
		s.String(),
	)
}

// TransitionTo returns the next status after verifying the move is allowed.
// This is the only way a Status value should be advanced.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.CanTransitionTo(next); err != nil {
		return StatusUnknown, err
	}
	return next, nil
}
