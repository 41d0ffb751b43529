package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes order writes to a single transaction.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	// load, change and save orders through uow.OrderRepository()
//
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback is safe to defer; after Commit it only reports that no transaction is active.
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction when one is active and to the
	// connection pool otherwise.
	OrderRepository() OrderRepository
}
