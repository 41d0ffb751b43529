package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the delivery state of an order.
//
// Reference flow:
//
//	Received ──> Preparing ──> Ready ──> EnRoute ──> Delivered
//
// The zero value Unknown catches uninitialized data and is never a valid target.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Received is the initial status of every new order.
	Received

	// Preparing means the restaurant confirmed the order and is cooking it.
	Preparing

	// Ready means the order waits for pickup.
	Ready

	// EnRoute means a courier is delivering the order.
	EnRoute

	// Delivered is the terminal status; only delivered orders count in statistics.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Received:  "RECEIVED",
		Preparing: "PREPARING",
		Ready:     "READY",
		EnRoute:   "EN_ROUTE",
		Delivered: "DELIVERED",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Received, Preparing, Ready, EnRoute, Delivered}
}

// ParseStatus converts a name such as "EN_ROUTE" (case-insensitive) into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that s is one of the five lifecycle statuses.
func (s Status) Validate() error {
	if s < Received || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether s is Delivered.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the following status in the reference flow.
// The second result is false for Delivered and invalid statuses.
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil || s.IsFinal() {
		return Unknown, false
	}
	return s + 1, true
}

// ValidateTransitionTo checks that target is the next forward status after s.
// It is only enforced for orders created with WithStrictTransitions.
func (s Status) ValidateTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if next, ok := s.Next(); !ok || next != target {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionIsNotAllowed, s, target)
	}
	return nil
}
