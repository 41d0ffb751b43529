package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// StatisticsReader exposes the aggregate figures. services.Statistics satisfies it.
type StatisticsReader interface {
	TotalOrders() int
	TotalRevenue() kernel.Money
	AveragePerOrder() kernel.Money
	Report() string
}

// GetStatisticsQueryHandler reads the in-process statistics aggregator.
type GetStatisticsQueryHandler struct {
	stats StatisticsReader
}

// NewGetStatisticsQueryHandler creates a handler over stats.
func NewGetStatisticsQueryHandler(stats StatisticsReader) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{stats: stats}
}

// Handle returns the current figures. The context is unused; the aggregator lives in
// memory.
func (h GetStatisticsQueryHandler) Handle(
	_ context.Context,
	query GetStatisticsQuery,
) (GetStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatisticsQueryResponse{}, err
	}

	return GetStatisticsQueryResponse{
		TotalOrders:     h.stats.TotalOrders(),
		TotalRevenue:    h.stats.TotalRevenue(),
		AveragePerOrder: h.stats.AveragePerOrder(),
		Report:          h.stats.Report(),
	}, nil
}
