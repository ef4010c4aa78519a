package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/clock"
	"ordering/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for user registration.
// Checks email uniqueness before creating the account; the database unique
// constraint closes the race between two concurrent registrations of the same
// email, so the pre-check is a fast path, not the guarantee.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      clock.Clock
}

// NewRegisterUserCommandHandler creates a handler for user registration.
// Requires a UserUoWFactory for transactional persistence and a clock for
// the creation timestamp.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, clk clock.Clock) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the registration command and returns the created user.
// An email already in use fails with user.EmailAlreadyExistsError; a malformed
// email fails with user.InvalidEmailError.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, user.NewEmailAlreadyExistsError(cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newUser, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
