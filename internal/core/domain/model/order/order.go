package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTransitionIsNotAllowed is returned by ChangeStatus on strict orders when the
	// target is not the next forward status.
	ErrTransitionIsNotAllowed = errors.New("status transition is not allowed")

	// ErrProductIsRequired is returned when a nil product is added to an order.
	ErrProductIsRequired = errs.NewValueIsRequiredError("product")
)

// Order is the aggregate root of the delivery flow. It owns an ordered list of
// products, the delivery status and the observers notified on status changes.
//
// Order follows these invariants:
//   - Total always equals the sum of the current items' prices
//   - Status starts at Received and changes only through ChangeStatus
//   - Every successful status change runs exactly one notification round
//
// An Order is not safe for concurrent use; callers drive it from one goroutine.
type Order struct {
	id         kernel.UUID
	client     client.Client
	restaurant restaurant.Restaurant
	items      []product.Product
	status     Status
	total      kernel.Money
	observers  []Observer

	strictTransitions bool
	isConstructed     bool
}

// Option configures optional Order behavior.
type Option func(*Order)

// WithStrictTransitions makes ChangeStatus accept only the next forward status
// (Received -> Preparing -> Ready -> EnRoute -> Delivered). Orders are permissive
// without it.
func WithStrictTransitions() Option {
	return func(o *Order) {
		o.strictTransitions = true
	}
}

// NewOrder creates an order in Received status with no items.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - c: The client the order is for (must be constructed)
//   - r: The preparing restaurant (must be constructed)
//   - opts: Optional behavior such as WithStrictTransitions
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), ana, laEsquina)
//	if err != nil {
//	    return err
//	}
//	_ = o.AddItem(product.Customize(burger, product.ExtraCheese))
func NewOrder(id kernel.UUID, c client.Client, r restaurant.Restaurant, opts ...Option) (*Order, error) {
	o := &Order{
		status:        Received,
		total:         kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClient(c),
		o.setRestaurant(r),
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. The status is set directly, without
// notifying anyone, and the total is recomputed from the items.
func RestoreOrder(
	id kernel.UUID,
	c client.Client,
	r restaurant.Restaurant,
	items []product.Product,
	status Status,
	opts ...Option,
) (*Order, error) {
	o, err := NewOrder(id, c, r, opts...)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	for _, item := range items {
		if err = o.AddItem(item); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Client returns the client the order is for.
func (o *Order) Client() client.Client {
	return o.client
}

// Restaurant returns the preparing restaurant.
func (o *Order) Restaurant() restaurant.Restaurant {
	return o.restaurant
}

// Items returns a copy of the items in insertion order.
func (o *Order) Items() []product.Product {
	return slices.Clone(o.items)
}

// ItemCount returns the number of items.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of all item prices.
func (o *Order) Total() kernel.Money {
	return o.total
}

// IsStrict reports whether the order only accepts forward transitions.
func (o *Order) IsStrict() bool {
	return o.strictTransitions
}

// AddItem appends p and recomputes the total. Adding the same product twice counts
// it twice. Observers are not notified.
func (o *Order) AddItem(p product.Product) error {
	if p == nil {
		return ErrProductIsRequired
	}

	o.items = append(o.items, p)
	o.calculateTotal()
	return nil
}

// ChangeStatus sets the status and then notifies every registered observer in
// registration order.
//
// Returns:
//   - nil when the status was set and every observer succeeded
//   - ValueIsInvalidError if newStatus is not a lifecycle status (nothing changes)
//   - ErrTransitionIsNotAllowed for strict orders skipping or reversing a step (nothing changes)
//   - the first observer error; the status is already changed and later observers are skipped
//
// Example:
//
//	if err := o.ChangeStatus(order.Ready); err != nil {
//	    return fmt.Errorf("order %s: %w", o.ID(), err)
//	}
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if o.strictTransitions {
		if err := o.status.ValidateTransitionTo(newStatus); err != nil {
			return err
		}
	}

	o.status = newStatus
	return o.notifyAll()
}

// Confirm moves the order to Preparing and returns the confirmation text.
func (o *Order) Confirm() (string, error) {
	if err := o.ChangeStatus(Preparing); err != nil {
		return "", err
	}

	return "Order confirmed. " + o.Summary(), nil
}

// Summary renders the client name, one line per item and the total:
//
//	Order for Ana:
//	- Hamburguesa + extra queso: $10.50
//	Total: $10.50
//
// It has no side effects and is rebuilt from the current items on every call.
func (o *Order) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Order for %s:\n", o.client.Name())
	for _, item := range o.items {
		fmt.Fprintf(&sb, "- %s: $%s\n", item.Description(), item.Price())
	}
	fmt.Fprintf(&sb, "Total: $%s", o.total)
	return sb.String()
}

func (o *Order) calculateTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	o.total = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(c client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.client = c
	return nil
}

func (o *Order) setRestaurant(r restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}
	o.restaurant = r
	return nil
}
