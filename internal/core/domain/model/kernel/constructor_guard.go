package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks values created through their constructor function so that a
// zero-value struct can be told apart from a validated one.
//
// Example:
//
//	var ErrClientNotConstructed = errors.New("Client must be created via NewClient")
//
//	type Client struct {
//	    name  string
//	    guard kernel.ConstructorGuard
//	}
//
//	func (c Client) Validate() error {
//	    return c.guard.Validate(ErrClientNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
