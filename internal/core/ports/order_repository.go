// Package ports defines the persistence contracts of the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their client, restaurant, status and the flattened
// product of every item (base product plus add-on codes).
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its items.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// The order is restored without observers; callers register the ones they need.
	// Returns errs.ObjectNotFoundError when no order has the identifier.
	Get(ctx context.Context, id kernel.UUID, opts ...order.Option) (*order.Order, error)
}
