package services

import (
	"fmt"
	"io"
	"strings"

	"fooddelivery/internal/core/domain/model/order"
)

// ClientNotifier tells the client about every status change of their order.
type ClientNotifier struct {
	name string
	out  io.Writer
}

// NewClientNotifier creates a notifier addressed to the client called name.
// A blank name falls back to "client".
func NewClientNotifier(out io.Writer, name string) *ClientNotifier {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "client"
	}
	return &ClientNotifier{name: name, out: out}
}

// OnUpdate writes the new status and the order total.
func (n *ClientNotifier) OnUpdate(o *order.Order) error {
	_, err := fmt.Fprintf(n.out, "Notification for %s: order status changed to %s, total $%s\n",
		n.name, o.Status(), o.Total())
	return err
}

// RestaurantNotifier tells the preparing restaurant about every status change.
type RestaurantNotifier struct {
	out io.Writer
}

// NewRestaurantNotifier creates a restaurant notifier writing to out.
func NewRestaurantNotifier(out io.Writer) *RestaurantNotifier {
	return &RestaurantNotifier{out: out}
}

// OnUpdate writes the new status, the client name and the number of items.
func (n *RestaurantNotifier) OnUpdate(o *order.Order) error {
	_, err := fmt.Fprintf(n.out, "Restaurant notification: order status %s, client %s, items %d\n",
		o.Status(), o.Client().Name(), o.ItemCount())
	return err
}

// CourierNotifier tells the courier where to deliver. It stays silent until the
// order is Ready.
type CourierNotifier struct {
	out io.Writer
}

// NewCourierNotifier creates a courier notifier writing to out.
func NewCourierNotifier(out io.Writer) *CourierNotifier {
	return &CourierNotifier{out: out}
}

// OnUpdate writes the delivery address and client phone for Ready, EnRoute and
// Delivered. Other statuses produce no output and no error.
func (n *CourierNotifier) OnUpdate(o *order.Order) error {
	if !concernsCourier(o.Status()) {
		return nil
	}

	_, err := fmt.Fprintf(n.out, "Courier notification: order status %s, deliver to %s, client phone %s\n",
		o.Status(), o.Client().Address(), o.Client().Phone())
	return err
}

func concernsCourier(s order.Status) bool {
	switch s {
	case order.Ready, order.EnRoute, order.Delivered:
		return true
	default:
		return false
	}
}

// StandardNotifiers returns the client, restaurant and courier notifiers for o, in
// that order, all writing to out.
//
// Example:
//
//	for _, n := range services.StandardNotifiers(os.Stdout, o) {
//	    o.AddObserver(n)
//	}
func StandardNotifiers(out io.Writer, o *order.Order) []order.Observer {
	return []order.Observer{
		NewClientNotifier(out, o.Client().Name()),
		NewRestaurantNotifier(out),
		NewCourierNotifier(out),
	}
}
