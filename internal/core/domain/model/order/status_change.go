package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
// created through NewStatusChange or RestoreStatusChange.
var ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via NewStatusChange or RestoreStatusChange constructor")

// StatusChange is one append-only audit record of the order's status history.
// The Order appends exactly one StatusChange per successful transition; records
// are never mutated or deleted.
type StatusChange struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	changedAt time.Time

	guard guard.ConstructorGuard
}

// NewStatusChange creates a new StatusChange with validation. The status is
// the state the order entered; changedAt comes from the caller's clock.
func NewStatusChange(id, orderID kernel.UUID, status Status, changedAt time.Time) (*StatusChange, error) {
	change := &StatusChange{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		change.setID(id),
		change.setOrderID(orderID),
		change.setStatus(status),
		change.setChangedAt(changedAt),
	); err != nil {
		return nil, err
	}

	return change, nil
}

// RestoreStatusChange reconstructs a StatusChange from persistent storage
// without re-running creation-time validation.
func RestoreStatusChange(id, orderID kernel.UUID, status Status, changedAt time.Time) *StatusChange {
	return &StatusChange{
		id:        id,
		orderID:   orderID,
		status:    status,
		changedAt: changedAt,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the StatusChange was created through a constructor.
func (c *StatusChange) Validate() error {
	if c == nil {
		return ErrStatusChangeIsNotConstructed
	}
	return c.guard.Validate(ErrStatusChangeIsNotConstructed)
}

// ID returns the record's unique identifier.
func (c *StatusChange) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the owning order.
func (c *StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status the order entered.
func (c *StatusChange) Status() Status {
	return c.status
}

// ChangedAt returns when the transition happened.
func (c *StatusChange) ChangedAt() time.Time {
	return c.changedAt
}

func (c *StatusChange) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *StatusChange) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StatusChange) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *StatusChange) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return errs.NewValueIsRequiredError("changedAt")
	}
	c.changedAt = changedAt
	return nil
}
