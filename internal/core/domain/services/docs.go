// Package services provides domain services that orchestrate business operations
// spanning the order aggregate and the restaurant it is placed at.
//
// The package includes:
//   - OrderDomainService: validates and initiates orders and drives them through
//     payment, approval and cancellation, raising the matching domain events
package services
