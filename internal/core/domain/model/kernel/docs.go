// Package kernel provides the shared domain primitives of the ordering service.
//
// The package includes:
//   - UUID: identifier value object compared by wrapped value, used for every entity id
//   - UUIDGenerator: the injected source of fresh identifiers
//   - Money: exact decimal amount with add, multiply and compare operations
//
// All primitives are immutable values and safe for concurrent use.
package kernel
