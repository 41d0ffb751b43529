package product

import (
	"fmt"
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// AddOn is a fixed (label, surcharge) pair from the add-on catalog.
// AddOns cannot be built by callers; use the catalog variables or AddOnByCode.
type AddOn struct {
	code      string
	label     string
	surcharge kernel.Money
}

// The add-on catalog.
var (
	ExtraCheese     = AddOn{code: "cheese", label: "extra queso", surcharge: kernel.MustMoney("2.50")}
	ExtraMeat       = AddOn{code: "meat", label: "extra carne", surcharge: kernel.MustMoney("4.00")}
	ExtraVegetables = AddOn{code: "vegetables", label: "extra vegetales", surcharge: kernel.MustMoney("1.50")}
	ExtraSauce      = AddOn{code: "sauce", label: "extra salsa", surcharge: kernel.MustMoney("1.00")}
)

var addOnCatalog = []AddOn{ExtraCheese, ExtraMeat, ExtraVegetables, ExtraSauce}

// AddOns returns the catalog in display order.
func AddOns() []AddOn {
	return slices.Clone(addOnCatalog)
}

// AddOnByCode looks up a catalog add-on by its code ("cheese", "meat", "vegetables", "sauce").
func AddOnByCode(code string) (AddOn, error) {
	for _, a := range addOnCatalog {
		if a.code == code {
			return a, nil
		}
	}
	return AddOn{}, errs.NewObjectNotFoundError("add-on", code)
}

// Code is the stable identifier used by the API and storage.
func (a AddOn) Code() string {
	return a.code
}

// Label is the text appended to a decorated product's description.
func (a AddOn) Label() string {
	return a.label
}

// Surcharge is the fixed amount added to the wrapped product's price.
func (a AddOn) Surcharge() kernel.Money {
	return a.surcharge
}

// Decorated wraps exactly one product and adds one AddOn to it.
// The wrapped product is owned by this node; chains never share nodes.
type Decorated struct {
	inner Product
	addOn AddOn
}

var _ Product = Decorated{}

// ErrProductIsRequired is returned when a nil product is decorated.
var ErrProductIsRequired = errs.NewValueIsRequiredError("product")

// Decorate wraps p with a. A nil p is rejected with ErrProductIsRequired.
func Decorate(p Product, a AddOn) (Decorated, error) {
	if p == nil {
		return Decorated{}, ErrProductIsRequired
	}
	return Decorated{inner: p, addOn: a}, nil
}

// Customize wraps p with each add-on in turn. With no add-ons p itself is returned,
// so no wrapper is created. A nil p stays nil; order.AddItem rejects it.
func Customize(p Product, addOns ...AddOn) Product {
	if p == nil {
		return nil
	}
	for _, a := range addOns {
		p = Decorated{inner: p, addOn: a}
	}
	return p
}

// Name appends " con <label>" to the wrapped product's name.
func (d Decorated) Name() string {
	return d.inner.Name() + " con " + d.addOn.label
}

// Price is the wrapped product's price plus the surcharge.
func (d Decorated) Price() kernel.Money {
	return d.inner.Price().Add(d.addOn.surcharge)
}

// Description appends " + <label>" to the wrapped product's description.
func (d Decorated) Description() string {
	return d.inner.Description() + " + " + d.addOn.label
}

// Inner returns the wrapped product.
func (d Decorated) Inner() Product {
	return d.inner
}

// AddOn returns the add-on this node contributes.
func (d Decorated) AddOn() AddOn {
	return d.addOn
}

// Unwrap flattens a decoration chain into its base product and the add-ons in
// wrapping order. Only chains built from Base and Decorated can be flattened.
func Unwrap(p Product) (Base, []AddOn, error) {
	var addOns []AddOn
	for {
		switch v := p.(type) {
		case Base:
			slices.Reverse(addOns)
			return v, addOns, nil
		case Decorated:
			addOns = append(addOns, v.addOn)
			p = v.inner
		default:
			return Base{}, nil, errs.NewValueIsInvalidErrorWithCause(
				"product",
				fmt.Errorf("%T is not a menu product", p),
			)
		}
	}
}
