package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler creates an order from a PlaceOrderCommand, confirms it and
// stores it. Confirmation moves the order to Preparing, which notifies the observers
// built by the ObserverFactory.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifiers)
//	confirmation, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("placing order failed: %w", err)
//	}
//	fmt.Println(confirmation) // Order confirmed. Order for Ana: ...
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	observers  ObserverFactory
	orderOpts  []order.Option
}

// NewPlaceOrderCommandHandler creates a handler for placing orders.
// orderOpts are applied to every created order, e.g. order.WithStrictTransitions.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	observers ObserverFactory,
	orderOpts ...order.Option,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		observers:  observers,
		orderOpts:  orderOpts,
	}
}

// Handle builds the order, confirms it and persists it in one transaction.
// It returns the confirmation text. An observer failure aborts the command and
// nothing is stored.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := order.NewOrder(cmd.OrderID(), cmd.Client(), cmd.Restaurant(), h.orderOpts...)
	if err != nil {
		return "", err
	}

	for _, item := range cmd.Items() {
		if err = o.AddItem(item); err != nil {
			return "", err
		}
	}

	attachObservers(o, h.observers)

	confirmation, err := o.Confirm()
	if err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return confirmation, nil
}
