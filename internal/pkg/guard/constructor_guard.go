// Package guard provides a defensive programming helper that ensures commands,
// queries, and value objects are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable at validation time.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. It works by maintaining an internal flag that is only
// set when the object is created through the proper constructor; a zero-value
// struct fails validation.
//
// Example usage:
//
//	type CreateWaterBoxCommand struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateWaterBoxCommand(code string) (CreateWaterBoxCommand, error) {
//	    if code == "" {
//	        return CreateWaterBoxCommand{}, errs.NewValueIsRequiredError("code")
//	    }
//	    return CreateWaterBoxCommand{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateWaterBoxCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateWaterBoxCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of guarded objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value, this method returns the provided
// validation error. If validationError is nil, ErrDefaultConstructorGuard is
// returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
