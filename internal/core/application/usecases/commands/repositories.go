// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency for every aggregate change.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Collaborators the handlers hand orders to besides the repository.
type (
	// ObserverFactory builds the observers registered on an order before its status
	// changes. Observers are not persisted, so every command registers them again.
	ObserverFactory interface {
		Observers(o *order.Order) []order.Observer
	}

	// CompletionRecorder receives orders that reached Delivered.
	// services.Statistics is the production implementation.
	CompletionRecorder interface {
		RecordCompletedOrder(o *order.Order) bool
	}
)

func attachObservers(o *order.Order, factory ObserverFactory) {
	if factory == nil {
		return
	}
	for _, obs := range factory.Observers(o) {
		o.AddObserver(obs)
	}
}
