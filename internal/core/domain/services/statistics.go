package services

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// CompletedOrder is the snapshot Statistics keeps of a delivered order.
type CompletedOrder struct {
	OrderID        kernel.UUID
	ClientName     string
	RestaurantName string
	ItemCount      int
	Total          kernel.Money
	RecordedAt     time.Time
}

// Statistics accumulates delivered orders and the revenue they brought.
//
// One instance is created per process and handed by reference to everything that
// records or reads completions. All methods are safe for concurrent use; the list
// of completed orders is append-only.
type Statistics struct {
	mu        sync.Mutex
	completed []CompletedOrder
	revenue   kernel.Money
	now       func() time.Time
}

// NewStatistics creates an empty aggregator.
func NewStatistics() *Statistics {
	return &Statistics{
		revenue: kernel.ZeroMoney(),
		now:     time.Now,
	}
}

// RecordCompletedOrder records o if and only if it is Delivered and reports whether
// it did. Any other status, as well as a nil or unconstructed order, is a no-op.
// Recording the same order twice counts it twice.
func (s *Statistics) RecordCompletedOrder(o *order.Order) bool {
	if o.Validate() != nil || o.Status() != order.Delivered {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = append(s.completed, CompletedOrder{
		OrderID:        o.ID(),
		ClientName:     o.Client().Name(),
		RestaurantName: o.Restaurant().Name(),
		ItemCount:      o.ItemCount(),
		Total:          o.Total(),
		RecordedAt:     s.now(),
	})
	s.revenue = s.revenue.Add(o.Total())
	return true
}

// TotalOrders returns the number of recorded orders.
func (s *Statistics) TotalOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.completed)
}

// TotalRevenue returns the running sum of recorded totals.
func (s *Statistics) TotalRevenue() kernel.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revenue
}

// AveragePerOrder returns TotalRevenue divided by TotalOrders, or zero when nothing
// was recorded.
func (s *Statistics) AveragePerOrder() kernel.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revenue.DivInt(len(s.completed))
}

// CompletedOrders returns a copy of the recorded snapshots in recording order.
func (s *Statistics) CompletedOrders() []CompletedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.completed)
}

// Report renders the aggregate figures:
//
//	Completed orders: 2
//	Total revenue: $41.50
//	Average per order: $20.75
func (s *Statistics) Report() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("Completed orders: %d\nTotal revenue: $%s\nAverage per order: $%s",
		len(s.completed), s.revenue, s.revenue.DivInt(len(s.completed)))
}
