package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(id, newAna(t), newEsquina(t), referenceSelections())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Ana", cmd.Client().Name())
	assert.Equal(t, "La Esquina", cmd.Restaurant().Name())

	items := cmd.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Hamburguesa + extra queso + extra salsa", items[0].Description())
	assert.Equal(t, "11.50", items[0].Price().String())
	assert.Equal(t, "Pizza", items[1].Description())
}

func TestNewPlaceOrderCommand_TrimsCodes(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), newAna(t), newEsquina(t), []commands.ItemSelection{
		{MenuCode: " salad ", AddOnCodes: []string{" vegetables"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "7.50", cmd.Items()[0].Price().String())
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, client.Client{}, restaurant.Restaurant{}, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, client.ErrClientIsNotConstructed)
	require.ErrorIs(t, err, restaurant.ErrRestaurantIsNotConstructed)
	require.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewPlaceOrderCommand_UnknownMenuCode(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), newAna(t), newEsquina(t), []commands.ItemSelection{
		{MenuCode: "burger"},
		{MenuCode: "sushi"},
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[1]")
	assert.Contains(t, err.Error(), "sushi")
}

func TestNewPlaceOrderCommand_UnknownAddOnCode(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), newAna(t), newEsquina(t), []commands.ItemSelection{
		{MenuCode: "burger", AddOnCodes: []string{"bacon"}},
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "bacon")
}

func TestPlaceOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.PlaceOrderCommand

	assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, cmd.Validate())
}
