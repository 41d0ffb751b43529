package commands_test

import (
	"bytes"
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID, _ ...order.Option) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// bufferedNotifiers registers the standard notifiers writing into a buffer.
type bufferedNotifiers struct {
	out bytes.Buffer
}

func (b *bufferedNotifiers) Observers(o *order.Order) []order.Observer {
	return services.StandardNotifiers(&b.out, o)
}

// failingNotifiers registers a single observer that always fails.
type failingNotifiers struct {
	err error
}

func (f failingNotifiers) Observers(*order.Order) []order.Observer {
	return []order.Observer{order.ObserverFunc(func(*order.Order) error { return f.err })}
}

func newAna(t *testing.T) client.Client {
	t.Helper()
	c, err := client.NewClient("Ana", "555-0101", "Calle 1 #23")
	require.NoError(t, err)
	return c
}

func newEsquina(t *testing.T) restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant("1", "La Esquina", "Comida casera")
	require.NoError(t, err)
	return r
}

func referenceSelections() []commands.ItemSelection {
	return []commands.ItemSelection{
		{MenuCode: "burger", AddOnCodes: []string{"cheese", "sauce"}},
		{MenuCode: "pizza"},
	}
}
