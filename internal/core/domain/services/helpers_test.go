package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

// newBurgerAndPizzaOrder builds the reference order: a burger with cheese and
// sauce (11.50) plus a pizza (12.00).
func newBurgerAndPizzaOrder(t *testing.T) *order.Order {
	t.Helper()

	c, err := client.NewClient("Ana", "555-0101", "Calle 1 #23")
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant("1", "La Esquina", "Comida casera")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), c, r)
	require.NoError(t, err)

	burger, err := product.FindMenuItem("burger")
	require.NoError(t, err)
	pizza, err := product.FindMenuItem("pizza")
	require.NoError(t, err)

	require.NoError(t, o.AddItem(product.Customize(burger, product.ExtraCheese, product.ExtraSauce)))
	require.NoError(t, o.AddItem(pizza))
	return o
}
