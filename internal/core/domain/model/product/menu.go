package product

import (
	"slices"

	"fooddelivery/internal/pkg/errs"
)

// MenuItem is an orderable base product with its menu code.
type MenuItem struct {
	Code    string
	Product Base
}

var menu = []MenuItem{
	{Code: "burger", Product: mustBase("Hamburguesa", "8.00")},
	{Code: "pizza", Product: mustBase("Pizza", "12.00")},
	{Code: "salad", Product: mustBase("Ensalada", "6.00")},
}

// Menu returns the base products in display order.
func Menu() []MenuItem {
	return slices.Clone(menu)
}

// FindMenuItem returns the base product registered under code.
func FindMenuItem(code string) (Base, error) {
	for _, item := range menu {
		if item.Code == code {
			return item.Product, nil
		}
	}
	return Base{}, errs.NewObjectNotFoundError("menu item", code)
}
