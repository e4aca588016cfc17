// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the owner, campaign, contact snapshot,
//     tracking number, lifecycle timestamps and pending lifecycle events
//   - Status: the state machine Open -> Placed -> Approved -> Dispatched, with
//     Open -> Approved for auto-approved placements
//   - Event / EventKind: what happened to an order, for the notification sink
//
// Key business rules:
//   - at most one Open order exists per (user, campaign)
//   - the contact snapshot can only be changed while the order is Open
//   - placement can not be undone; approval and dispatch happen once each
//   - dispatch requires approval and a tracking number of at most 20 characters
package order
