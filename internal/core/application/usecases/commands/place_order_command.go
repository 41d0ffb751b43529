package commands

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemSelection is one menu choice: a base product code and the add-on codes to
// wrap it with, in wrapping order.
type ItemSelection struct {
	MenuCode   string
	AddOnCodes []string
}

// PlaceOrderCommand represents a client placing an order at a restaurant.
// The selections are resolved against the menu and the add-on catalog when the
// command is built, so a constructed command always carries valid products.
//
// Example:
//
//	ana, _ := client.NewClient("Ana", "555-0101", "Calle 1 #23")
//	esquina, _ := restaurant.NewRestaurant("1", "La Esquina", "Comida casera")
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), ana, esquina, []ItemSelection{
//	    {MenuCode: "burger", AddOnCodes: []string{"cheese", "sauce"}},
//	    {MenuCode: "pizza"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	client     client.Client
	restaurant restaurant.Restaurant
	items      []product.Product

	guard kernel.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Every invalid argument is reported; unknown menu or add-on codes are reported as
// invalid items.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	c client.Client,
	r restaurant.Restaurant,
	selections []ItemSelection,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClient(c),
		cmd.setRestaurant(r),
		cmd.setItems(selections),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Client returns the ordering client.
func (c PlaceOrderCommand) Client() client.Client {
	return c.client
}

// Restaurant returns the restaurant that prepares the order.
func (c PlaceOrderCommand) Restaurant() restaurant.Restaurant {
	return c.restaurant
}

// Items returns the resolved products in selection order.
func (c PlaceOrderCommand) Items() []product.Product {
	return append([]product.Product(nil), c.items...)
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setClient(cl client.Client) error {
	if err := cl.Validate(); err != nil {
		return err
	}

	c.client = cl
	return nil
}

func (c *PlaceOrderCommand) setRestaurant(r restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	c.restaurant = r
	return nil
}

func (c *PlaceOrderCommand) setItems(selections []ItemSelection) error {
	if len(selections) == 0 {
		return ErrItemsAreRequired
	}

	items := make([]product.Product, 0, len(selections))
	for i, selection := range selections {
		p, err := resolveSelection(selection)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		items = append(items, p)
	}

	c.items = items
	return nil
}

func resolveSelection(selection ItemSelection) (product.Product, error) {
	base, err := product.FindMenuItem(strings.TrimSpace(selection.MenuCode))
	if err != nil {
		return nil, err
	}

	addOns := make([]product.AddOn, 0, len(selection.AddOnCodes))
	for _, code := range selection.AddOnCodes {
		addOn, err := product.AddOnByCode(strings.TrimSpace(code))
		if err != nil {
			return nil, err
		}
		addOns = append(addOns, addOn)
	}

	return product.Customize(base, addOns...), nil
}
