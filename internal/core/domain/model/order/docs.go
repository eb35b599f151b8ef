// Package order implements the Order aggregate of the ordering service: the order
// root, its OrderItem children, and the lifecycle state machine that payment and
// restaurant-approval outcomes drive.
//
// The package includes:
//   - Order: the aggregate root and sole unit of transactional consistency
//   - OrderItem: a line of the order, numbered 1..N when the order is initialized
//   - Status: the state machine Unknown -> Pending -> Paid -> Approved, with the
//     cancellation branches Pending -> Cancelled and Paid -> Cancelling -> Cancelled
//   - Product, StreetAddress, Restaurant: the values an order is built from
//   - Event: what happened to an order, for publishing after commit
//
// Every lifecycle operation checks all of its preconditions before mutating
// anything, so a refused operation leaves the aggregate untouched. Refusals are
// errs.DomainRuleViolationError values.
package order
