package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to register a new user account.
// The name may be empty; email format and uniqueness are enforced downstream
// by the user aggregate and the repository.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  string
	name   string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates that the user ID is valid and the email is present.
func NewRegisterUserCommand(userID kernel.UUID, email, name string) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setEmail(email),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	userCommand.name = name
	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the email address to register.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the display name, possibly empty.
func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
