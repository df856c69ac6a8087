// Package product provides the Product aggregate root and its inventory ledger.
//
// A product carries three inventory counters:
//   - quantity: total units physically owned
//   - reserved: units committed to unfulfilled orders
//   - available: derived as max(0, quantity - reserved), never stored or set directly
//
// The ledger is mutated through three operations only:
//   - Reserve: commit available units to a pending order
//   - Release: return reserved units when an order is cancelled or deleted
//   - Consume: convert a reservation into a permanent deduction on shipment
//
// Every mutation keeps the derived available count consistent; callers can never
// push the counters into a state where reserved exceeds quantity through the
// exported API.
package product
