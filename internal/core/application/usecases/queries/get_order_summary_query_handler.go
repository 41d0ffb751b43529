package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderReader loads order aggregates. ports.OrderRepository satisfies it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID, opts ...order.Option) (*order.Order, error)
}

// GetOrderSummaryQueryHandler renders the summary of a stored order.
//
// Example:
//
//	handler := NewGetOrderSummaryQueryHandler(uowFactory.Create().OrderRepository())
//	query, _ := NewGetOrderSummaryQuery(orderID)
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
//	fmt.Println(resp.Summary)
type GetOrderSummaryQueryHandler struct {
	orders OrderReader
}

// NewGetOrderSummaryQueryHandler creates a handler reading through orders.
func NewGetOrderSummaryQueryHandler(orders OrderReader) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{orders: orders}
}

// Handle loads the order and renders its summary. Unknown orders yield
// errs.ObjectNotFoundError.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	items := make([]OrderItemView, 0, o.ItemCount())
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
		})
	}

	return GetOrderSummaryQueryResponse{
		ID:             o.ID(),
		ClientName:     o.Client().Name(),
		RestaurantName: o.Restaurant().Name(),
		Status:         o.Status().String(),
		Items:          items,
		Total:          o.Total(),
		Summary:        o.Summary(),
	}, nil
}
