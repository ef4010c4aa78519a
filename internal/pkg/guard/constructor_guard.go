// Package guard provides a defensive pattern that ensures value objects,
// entities, and commands are only created through their designated constructor
// functions, never as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the embedding struct was created through its
// constructor. The guard holds an internal flag that only the constructor path
// sets; a zero-value struct carries a zero-value guard and fails validation.
//
// Example:
//
//	type Command struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCommand(value string) (Command, error) {
//	    if value == "" {
//	        return Command{}, errors.New("value is required")
//	    }
//	    return Command{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
