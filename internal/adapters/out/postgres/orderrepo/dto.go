// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// An order is stored as one "orders" row and one "order_items" row per item. Items are
// flattened into their base product and the codes of the add-ons wrapped around it, in
// wrapping order, and rebuilt from the add-on catalog when loaded.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The total is stored next to the items so that reporting queries do not need to
// rebuild products.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Client     ClientDTO       `gorm:"embedded;embeddedPrefix:client_"`
	Restaurant RestaurantDTO   `gorm:"embedded;embeddedPrefix:restaurant_"`
	Status     int             `gorm:"index"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Items      []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ClientDTO is the client embedded in the order row.
type ClientDTO struct {
	Name    string
	Phone   string
	Address string
}

// RestaurantDTO is the restaurant reference embedded in the order row.
type RestaurantDTO struct {
	ID          string
	Name        string
	Description string
}

// OrderItemDTO is one product of an order.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	Position  int
	BaseName  string
	BasePrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	AddOns    pq.StringArray  `gorm:"type:text[]"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Items that are not built from the menu and the add-on catalog cannot be stored.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	id := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, aggregate.ItemCount())
	for i, item := range aggregate.Items() {
		base, addOns, err := product.Unwrap(item)
		if err != nil {
			return OrderDTO{}, err
		}

		codes := make(pq.StringArray, 0, len(addOns))
		for _, a := range addOns {
			codes = append(codes, a.Code())
		}

		items = append(items, OrderItemDTO{
			OrderID:   id,
			Position:  i,
			BaseName:  base.Name(),
			BasePrice: base.Price().Decimal(),
			AddOns:    codes,
		})
	}

	return OrderDTO{
		ID: id,
		Client: ClientDTO{
			Name:    aggregate.Client().Name(),
			Phone:   aggregate.Client().Phone(),
			Address: aggregate.Client().Address(),
		},
		Restaurant: RestaurantDTO{
			ID:          aggregate.Restaurant().ID(),
			Name:        aggregate.Restaurant().Name(),
			Description: aggregate.Restaurant().Description(),
		},
		Status: int(aggregate.Status()),
		Total:  aggregate.Total().Decimal(),
		Items:  items,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Items must be sorted by position.
func toDomain(dto OrderDTO, opts ...order.Option) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	c, err := client.NewClient(dto.Client.Name, dto.Client.Phone, dto.Client.Address)
	if err != nil {
		return nil, err
	}

	r, err := restaurant.NewRestaurant(dto.Restaurant.ID, dto.Restaurant.Name, dto.Restaurant.Description)
	if err != nil {
		return nil, err
	}

	items := make([]product.Product, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, c, r, items, order.Status(dto.Status), opts...)
}

func itemToDomain(dto OrderItemDTO) (product.Product, error) {
	price, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	base, err := product.NewBase(dto.BaseName, price)
	if err != nil {
		return nil, err
	}

	addOns := make([]product.AddOn, 0, len(dto.AddOns))
	for _, code := range dto.AddOns {
		a, addOnErr := product.AddOnByCode(code)
		if addOnErr != nil {
			return nil, addOnErr
		}
		addOns = append(addOns, a)
	}

	return product.Customize(base, addOns...), nil
}
