package user

import (
	"errors"
	"regexp"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// emailPattern accepts addresses of the form local@domain.tld where the local
// part allows letters, digits and the characters "_.+-".
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9-.]+$`)

// User is the aggregate root for a registered user.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a well-formed email address
//   - Creation timestamp is set once and never changes
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id        kernel.UUID
	email     string
	name      string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a new User with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - email: address matching the accepted email format
//   - name: display name, may be empty
//   - createdAt: creation timestamp supplied by the caller's clock
//
// Returns the created user, or a validation error. An email that does not
// match the accepted format fails with InvalidEmailError.
func NewUser(id kernel.UUID, email, name string, createdAt time.Time) (*User, error) {
	u := &User{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage.
//
// Unlike NewUser this path does not re-run creation-time validation: rows that
// were valid when stored must hydrate unchanged even if validation rules have
// evolved since. Every field is set explicitly.
func RestoreUser(id kernel.UUID, email, name string, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name. May be empty.
func (u *User) Name() string {
	return u.name
}

// CreatedAt returns the time the user was registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return NewInvalidEmailError(email)
	}
	u.email = email
	return nil
}

func (u *User) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt
	return nil
}
