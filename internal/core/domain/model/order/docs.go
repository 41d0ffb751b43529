// Package order provides the Order aggregate root of the food delivery system.
//
// The package includes:
//   - Order: The aggregate that owns the client, restaurant, ordered items and delivery status
//   - Status: The delivery lifecycle RECEIVED -> PREPARING -> READY -> EN_ROUTE -> DELIVERED
//   - Observer: The capability notified synchronously on every status change
//
// Key business rules:
//   - The total is always the sum of the current items' prices and is recomputed on AddItem
//   - Item insertion order is preserved for display; it never affects the total
//   - A new order starts in RECEIVED and only ChangeStatus moves it, always notifying
//   - By default any valid status may follow any other; WithStrictTransitions limits
//     ChangeStatus to the next forward status
//   - Observers run in registration order on the caller's goroutine; the first
//     observer error aborts the remaining notifications of that round
package order
