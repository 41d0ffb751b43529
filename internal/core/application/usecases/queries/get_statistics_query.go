package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
)

var (
	ErrGetStatisticsQueryIsNotConstructed = errors.New(
		"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
	)
)

// GetStatisticsQuery reads the delivered-order figures of this process.
type GetStatisticsQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetStatisticsQuery creates a statistics query.
func NewGetStatisticsQuery() GetStatisticsQuery {
	return GetStatisticsQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

// GetStatisticsQueryResponse holds the aggregate figures and the rendered report.
type GetStatisticsQueryResponse struct {
	TotalOrders     int
	TotalRevenue    kernel.Money
	AveragePerOrder kernel.Money
	Report          string
}
