package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves the rendered summary of one order.
type GetOrderSummaryQuery struct {
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for the order with the given identifier.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderSummaryQueryResponse carries the summary text with the figures it shows.
type GetOrderSummaryQueryResponse struct {
	ID             kernel.UUID
	ClientName     string
	RestaurantName string
	Status         string
	Items          []OrderItemView
	Total          kernel.Money
	Summary        string
}

// OrderItemView is one line of an order summary.
type OrderItemView struct {
	Name        string
	Description string
	Price       kernel.Money
}
