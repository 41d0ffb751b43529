// Package client provides the Client value object: the person an order is prepared
// for and delivered to.
package client

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client was not created via NewClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is an immutable value object holding the contact data used by notifications.
// Two clients with the same fields are equal; there is no identity beyond the fields.
type Client struct {
	name    string
	phone   string
	address string

	guard kernel.ConstructorGuard
}

// NewClient creates a Client. The name is required; phone and address may be empty
// when the upstream user record does not carry them.
//
// Example:
//
//	c, err := client.NewClient("Ana", "555-0101", "Calle 1 #23")
//	if err != nil {
//	    return err
//	}
func NewClient(name, phone, address string) (Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Client{}, errs.NewValueIsRequiredError("name")
	}

	return Client{
		name:    name,
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Client was created through NewClient.
func (c Client) Validate() error {
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// Name returns the client's display name.
func (c Client) Name() string {
	return c.name
}

// Phone returns the contact phone handed to couriers.
func (c Client) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c Client) Address() string {
	return c.address
}

func (c Client) String() string {
	return fmt.Sprintf("Client: %s, phone: %s, address: %s", c.name, c.phone, c.address)
}
