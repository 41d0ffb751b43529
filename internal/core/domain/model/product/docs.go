// Package product provides the customizable products that make up an order.
//
// A product is either a Base menu item or a Decorated product that wraps exactly one
// other product and adds one fixed-price AddOn. Decoration can be nested to any depth:
//
//	burger, _ := product.FindMenuItem("burger")               // Hamburguesa, 8.00
//	custom := product.Customize(burger, product.ExtraCheese, product.ExtraSauce)
//	custom.Price()       // 11.50
//	custom.Description() // "Hamburguesa + extra queso + extra salsa"
//
// Price and description are computed from the chain each time they are requested;
// nothing is cached. Add-on order changes the description word order only, never the price.
package product
