// Package order provides the Order aggregate root and the value objects that
// make up a storefront order: line items with snapshotted name and price,
// shipping and billing addresses, payment and shipping methods, computed
// totals, and the status pair that drives the order lifecycle.
//
// The lifecycle is an explicit state machine:
//
//	pending ──> processing ──> shipped ──> delivered
//	   │    \______________________▲
//	   │            │
//	   └────────────┴──> cancelled
//
// pending and processing can be cancelled; pending can ship directly (the
// reservation is already held); delivered and cancelled are terminal. Any
// transition outside the table is rejected before side effects are applied,
// which is what makes re-cancellation (and the double release of inventory it
// would cause) impossible.
//
// Inventory side effects of transitions are coordinated by the command
// handlers in the application layer; this package only guards which
// transitions are legal and keeps the order's own fields consistent.
package order
