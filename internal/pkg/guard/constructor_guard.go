// Package guard provides the constructor guard pattern used by domain objects
// and commands to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation, which lets domain objects
// and commands detect direct struct initialization.
//
// Embed a ConstructorGuard in the struct and set it in the constructor:
//
//	type SubmitOfferCommand struct {
//	    tenderID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewSubmitOfferCommand(...) (SubmitOfferCommand, error) {
//	    return SubmitOfferCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitOfferCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
