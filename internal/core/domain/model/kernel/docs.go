// Package kernel provides core domain primitives shared by the food delivery model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: An exact, non-negative decimal amount used for prices, surcharges and revenue
//   - ConstructorGuard: A marker that distinguishes constructed values from zero values
//
// These primitives are immutable and safe for concurrent use.
package kernel
