// Package catalog models what a campaign offers: the Campaign aggregate and
// its Items with stock counts and auto-approval / stock-alert thresholds.
//
// Key business rules:
//   - every Item belongs to exactly one Campaign
//   - stock is only decremented by dispatch and may go negative (oversell is
//     reconciled manually)
//   - a quantity is auto-approvable when it does not exceed the item's
//     auto-approval threshold
package catalog
