// Package services provides domain services that work across the order aggregate
// and live outside of it.
//
// The package includes:
//   - ClientNotifier, RestaurantNotifier and CourierNotifier: order observers that
//     render one notification line per status change into an io.Writer
//   - Statistics: the process-scoped aggregator of delivered orders
//
// Notifiers decide on their own whether a status change concerns them; the order
// applies no filtering. Statistics is safe for concurrent use and is shared by
// reference, one instance per process.
package services
