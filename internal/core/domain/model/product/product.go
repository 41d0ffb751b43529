package product

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Product is anything that can be put on an order.
// Implementations must be pure: repeated calls return the same values.
type Product interface {
	// Name is the short product name, e.g. "Hamburguesa con extra queso".
	Name() string

	// Price is the full price including every add-on.
	Price() kernel.Money

	// Description lists the base name followed by each add-on label in wrapping order.
	Description() string
}

// Base is an undecorated menu product. It is immutable once created.
type Base struct {
	name  string
	price kernel.Money
}

var _ Product = Base{}

// NewBase creates a base product. The name is required.
func NewBase(name string, price kernel.Money) (Base, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Base{}, errs.NewValueIsRequiredError("product name")
	}
	return Base{name: name, price: price}, nil
}

func mustBase(name, price string) Base {
	b, err := NewBase(name, kernel.MustMoney(price))
	if err != nil {
		panic(fmt.Sprintf("invalid menu item %q: %v", name, err))
	}
	return b
}

// Name returns the product name.
func (b Base) Name() string {
	return b.name
}

// Price returns the base price.
func (b Base) Price() kernel.Money {
	return b.price
}

// Description of a base product is its name.
func (b Base) Description() string {
	return b.name
}
