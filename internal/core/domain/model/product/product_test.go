package product_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burger(t *testing.T) product.Base {
	t.Helper()
	b, err := product.NewBase("Hamburguesa", kernel.MustMoney("8.00"))
	require.NoError(t, err)
	return b
}

func TestNewBase(t *testing.T) {
	t.Run("price and description come from the base fields", func(t *testing.T) {
		b := burger(t)

		assert.Equal(t, "Hamburguesa", b.Name())
		assert.Equal(t, "Hamburguesa", b.Description())
		assert.True(t, b.Price().Equal(kernel.MustMoney("8")))
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := product.NewBase("", kernel.MustMoney("1"))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func decorate(t *testing.T, p product.Product, a product.AddOn) product.Decorated {
	t.Helper()
	d, err := product.Decorate(p, a)
	require.NoError(t, err)
	return d
}

func TestDecorate(t *testing.T) {
	t.Run("burger with cheese and sauce", func(t *testing.T) {
		p := decorate(t, decorate(t, burger(t), product.ExtraCheese), product.ExtraSauce)

		assert.Equal(t, "11.50", p.Price().String())
		assert.Equal(t, "Hamburguesa + extra queso + extra salsa", p.Description())
		assert.Equal(t, "Hamburguesa con extra queso con extra salsa", p.Name())
	})

	t.Run("each node exposes its wrapped product and add-on", func(t *testing.T) {
		b := burger(t)
		p := decorate(t, b, product.ExtraMeat)

		assert.Equal(t, b, p.Inner())
		assert.Equal(t, product.ExtraMeat, p.AddOn())
	})

	t.Run("price is evaluated from the chain on every call", func(t *testing.T) {
		p := decorate(t, burger(t), product.ExtraVegetables)

		assert.Equal(t, p.Price(), p.Price())
		assert.Equal(t, p.Description(), p.Description())
	})

	t.Run("should require a product to wrap", func(t *testing.T) {
		p, err := product.Decorate(nil, product.ExtraCheese)

		require.ErrorIs(t, err, product.ErrProductIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, product.Decorated{}, p)
	})
}

func TestCustomize(t *testing.T) {
	t.Run("zero add-ons returns the base product itself", func(t *testing.T) {
		b := burger(t)

		p := product.Customize(b)

		assert.Equal(t, product.Product(b), p)
		assert.IsType(t, product.Base{}, p)
	})

	t.Run("nil product stays nil", func(t *testing.T) {
		assert.Nil(t, product.Customize(nil, product.ExtraCheese, product.ExtraSauce))
	})

	t.Run("price is base plus every surcharge regardless of order", func(t *testing.T) {
		all := []product.AddOn{product.ExtraCheese, product.ExtraMeat, product.ExtraVegetables, product.ExtraSauce}
		reversed := []product.AddOn{product.ExtraSauce, product.ExtraVegetables, product.ExtraMeat, product.ExtraCheese}

		forward := product.Customize(burger(t), all...)
		backward := product.Customize(burger(t), reversed...)

		// 8.00 + 2.50 + 4.00 + 1.50 + 1.00
		assert.True(t, forward.Price().Equal(kernel.MustMoney("17.00")))
		assert.True(t, forward.Price().Equal(backward.Price()))
		assert.NotEqual(t, forward.Description(), backward.Description())
	})

	t.Run("description lists labels in wrapping order", func(t *testing.T) {
		p := product.Customize(burger(t), product.ExtraSauce, product.ExtraCheese, product.ExtraSauce)

		assert.Equal(t, "Hamburguesa + extra salsa + extra queso + extra salsa", p.Description())
		assert.Equal(t, "12.50", p.Price().String())
	})
}

func TestAddOnCatalog(t *testing.T) {
	testCases := []struct {
		code      string
		label     string
		surcharge string
	}{
		{"cheese", "extra queso", "2.50"},
		{"meat", "extra carne", "4.00"},
		{"vegetables", "extra vegetales", "1.50"},
		{"sauce", "extra salsa", "1.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			a, err := product.AddOnByCode(tc.code)

			require.NoError(t, err)
			assert.Equal(t, tc.code, a.Code())
			assert.Equal(t, tc.label, a.Label())
			assert.Equal(t, tc.surcharge, a.Surcharge().String())
		})
	}

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := product.AddOnByCode("truffle")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("AddOns returns a copy", func(t *testing.T) {
		list := product.AddOns()
		require.Len(t, list, 4)
		list[0] = product.ExtraSauce

		assert.Equal(t, product.ExtraCheese, product.AddOns()[0])
	})
}

func TestMenu(t *testing.T) {
	t.Run("lists the three base products", func(t *testing.T) {
		items := product.Menu()

		require.Len(t, items, 3)
		assert.Equal(t, "burger", items[0].Code)
		assert.Equal(t, "Hamburguesa", items[0].Product.Name())
		assert.Equal(t, "12.00", items[1].Product.Price().String())
		assert.Equal(t, "Ensalada", items[2].Product.Description())
	})

	t.Run("finds items by code", func(t *testing.T) {
		pizza, err := product.FindMenuItem("pizza")

		require.NoError(t, err)
		assert.Equal(t, "Pizza", pizza.Name())
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := product.FindMenuItem("sushi")

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "sushi", notFound.ID)
	})
}

type foreignProduct struct{}

func (foreignProduct) Name() string        { return "gift card" }
func (foreignProduct) Price() kernel.Money { return kernel.MustMoney("5") }
func (foreignProduct) Description() string { return "gift card" }

func TestUnwrap(t *testing.T) {
	t.Run("flattens a chain in wrapping order", func(t *testing.T) {
		b := burger(t)
		p := product.Customize(b, product.ExtraMeat, product.ExtraCheese)

		base, addOns, err := product.Unwrap(p)

		require.NoError(t, err)
		assert.Equal(t, b, base)
		assert.Equal(t, []product.AddOn{product.ExtraMeat, product.ExtraCheese}, addOns)
	})

	t.Run("a base product has no add-ons", func(t *testing.T) {
		base, addOns, err := product.Unwrap(burger(t))

		require.NoError(t, err)
		assert.Equal(t, "Hamburguesa", base.Name())
		assert.Empty(t, addOns)
	})

	t.Run("rebuilding from the flattened form gives the same product", func(t *testing.T) {
		p := product.Customize(burger(t), product.ExtraSauce, product.ExtraVegetables)

		base, addOns, err := product.Unwrap(p)
		require.NoError(t, err)

		assert.Equal(t, p, product.Customize(base, addOns...))
	})

	t.Run("foreign products are rejected", func(t *testing.T) {
		_, _, err := product.Unwrap(decorate(t, foreignProduct{}, product.ExtraSauce))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is not a menu product")
	})
}
