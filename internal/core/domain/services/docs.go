// Package services provides domain services for the ordering workflow: the
// steps that span an order, its basket lines and the catalog items, and so
// belong to no single aggregate.
//
// The package includes:
//   - AutoApprovalPolicy: decides whether a placement needs manual approval
//   - OrderPlacer: binds basket lines to an order and places it
//   - OrderFulfiller: books stock for the lines and dispatches the order
//
// The services never touch storage. Command handlers load the aggregates,
// call a service and persist what it changed.
package services
