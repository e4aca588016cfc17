// Package kernel holds the value objects shared by every aggregate of the
// ordering domain:
//   - UUID: identifier for campaigns, items, basket lines, orders, dealers and users
//   - Contact: the shipping and contact block a dealer keeps as defaults and an
//     order carries as an independent snapshot
package kernel
