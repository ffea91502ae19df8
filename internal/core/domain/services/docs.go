// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - VehicleAssignment: keeps the driver↔vehicle assignment pointers
//     mutually consistent
//
// Domain services implement workflows that do not naturally belong to a
// single aggregate root; each aggregate still enforces its own side of the
// invariant.
package services
