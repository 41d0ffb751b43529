// Package restaurant provides the reference to the restaurant that prepares an order.
// The catalog of restaurants lives outside this service; only the data needed to
// display and persist an order is kept here.
package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created via NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is an immutable reference: an opaque catalog identifier plus display data.
type Restaurant struct {
	id          string
	name        string
	description string

	guard kernel.ConstructorGuard
}

// NewRestaurant creates a restaurant reference. id and name are required.
func NewRestaurant(id, name, description string) (Restaurant, error) {
	r := Restaurant{
		id:          strings.TrimSpace(id),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		guard:       kernel.NewConstructorGuard(),
	}

	var idErr, nameErr error
	if r.id == "" {
		idErr = errs.NewValueIsRequiredError("restaurant id")
	}
	if r.name == "" {
		nameErr = errs.NewValueIsRequiredError("restaurant name")
	}
	if err := errors.Join(idErr, nameErr); err != nil {
		return Restaurant{}, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the catalog identifier.
func (r Restaurant) ID() string {
	return r.id
}

// Name returns the display name.
func (r Restaurant) Name() string {
	return r.name
}

// Description returns the catalog description, possibly empty.
func (r Restaurant) Description() string {
	return r.description
}

func (r Restaurant) String() string {
	return fmt.Sprintf("Restaurant: %s - %s", r.name, r.description)
}
