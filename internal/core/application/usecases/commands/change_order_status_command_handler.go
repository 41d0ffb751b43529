package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler loads an order, changes its status with the
// standard observers attached and stores the result. Orders that move to Delivered
// from another status are handed to the CompletionRecorder once the transaction is
// committed; repeating Delivered records nothing.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, notifiers, stats)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Delivered)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Println(stats.Report())
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	observers  ObserverFactory
	recorder   CompletionRecorder
	orderOpts  []order.Option
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// orderOpts are applied when orders are loaded, e.g. order.WithStrictTransitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	observers ObserverFactory,
	recorder CompletionRecorder,
	orderOpts ...order.Option,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		observers:  observers,
		recorder:   recorder,
		orderOpts:  orderOpts,
	}
}

// Handle processes the status change.
// Returns errs.ObjectNotFoundError for unknown orders, order.ErrTransitionIsNotAllowed
// for rejected strict transitions and the first observer error; in every error case
// the stored order is left unchanged.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID(), h.orderOpts...)
	if err != nil {
		return err
	}

	attachObservers(o, h.observers)

	wasDelivered := o.Status() == order.Delivered
	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.recorder != nil && !wasDelivered {
		h.recorder.RecordCompletedOrder(o)
	}

	return nil
}
