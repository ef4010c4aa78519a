package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer order. It owns its line items and
// its status history and manages the lifecycle from creation through payment,
// shipment, and completion (or cancellation).
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid user reference
//   - Total amount always equals the sum of item subtotals, maintained
//     incrementally on every AddItem
//   - Status transitions follow the lifecycle rules; every successful
//     transition appends exactly one StatusChange record
//   - An order can be paid at most once
//   - Can only be created through NewOrder or RestoreOrder
//
// The version field supports optimistic locking at the repository: two callers
// that load the same order concurrently cannot both persist a transition, so
// "paid at most once" holds across processes, not only in memory.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the ordering user by id (weak reference, no ownership)
	userID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// totalAmount is the running sum of item subtotals
	totalAmount kernel.Money

	// createdAt is set once at creation
	createdAt time.Time

	// version is the optimistic-locking counter checked on update
	version int

	// items is the ordered sequence of line items owned by this order
	items []*OrderItem

	// statusHistory is the append-only audit trail of status transitions
	statusHistory []*StatusChange

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Created status with no items, an empty
// history, and a zero total.
//
// Parameters:
//   - id: unique identifier for the order
//   - userID: identifier of the ordering user
//   - createdAt: creation timestamp supplied by the caller's clock
//
// The creation itself is not recorded in the status history; history entries
// are appended by transitions only.
func NewOrder(id, userID kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:      Created,
		totalAmount: kernel.ZeroMoney(),
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
//
// Unlike NewOrder this path does not re-run creation-time validation: rows
// that were valid when stored must hydrate unchanged even if validation rules
// have evolved since. Every field is set explicitly, including the derived
// total, which is read back rather than recomputed.
func RestoreOrder(
	id, userID kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	createdAt time.Time,
	version int,
	items []*OrderItem,
	statusHistory []*StatusChange,
) *Order {
	return &Order{
		id:            id,
		userID:        userID,
		status:        status,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		version:       version,
		items:         items,
		statusHistory: statusHistory,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the ordering user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of all item subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns the time the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-locking counter.
func (o *Order) Version() int {
	return o.version
}

// Items returns the order's line items.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// StatusHistory returns the append-only status audit trail in the order the
// transitions happened.
func (o *Order) StatusHistory() []*StatusChange {
	return o.statusHistory
}

// AddItem creates a line item, attaches it to the order, and adds its subtotal
// to the running total.
//
// Adding to a cancelled order fails with OrderCancelledError. Item validation
// (non-empty product name, price >= 0, quantity > 0) happens in NewOrderItem
// before the order is touched, so a failed call leaves items and total
// unchanged.
func (o *Order) AddItem(productName string, price kernel.Money, quantity int) (*OrderItem, error) {
	if o.status == Cancelled {
		return nil, NewOrderCancelledError(o.id)
	}

	item, err := NewOrderItem(kernel.NewUUID(), o.id, productName, price, quantity)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.totalAmount = o.totalAmount.Add(item.Subtotal())
	return item, nil
}

// Pay transitions the order to Paid.
//
// Valid only from Created. An order in Paid, Shipped, or Completed fails with
// OrderAlreadyPaidError — an order is paid at most once, and the later states
// are only reachable through a prior payment. A cancelled order fails with
// OrderCancelledError.
//
// Note: this guard covers the in-memory aggregate. The cross-process race of
// two callers loading the same Created order is closed by the repository's
// version check on update.
func (o *Order) Pay(now time.Time) error {
	switch o.status {
	case Created:
		return o.applyStatus(Paid, now)
	case Paid, Shipped, Completed:
		return NewOrderAlreadyPaidError(o.id)
	case Cancelled:
		return NewOrderCancelledError(o.id)
	case Unknown:
		fallthrough
	default:
		return NewInvalidTransitionError(o.id, o.status, Paid)
	}
}

// Cancel transitions the order to Cancelled.
//
// Valid only from Created. A paid (or shipped, or completed) order cannot be
// cancelled and fails with OrderAlreadyPaidError; an already-cancelled order
// fails with OrderCancelledError.
func (o *Order) Cancel(now time.Time) error {
	switch o.status {
	case Created:
		return o.applyStatus(Cancelled, now)
	case Paid, Shipped, Completed:
		return NewOrderAlreadyPaidError(o.id)
	case Cancelled:
		return NewOrderCancelledError(o.id)
	case Unknown:
		fallthrough
	default:
		return NewInvalidTransitionError(o.id, o.status, Cancelled)
	}
}

// Ship transitions the order to Shipped. Valid only from Paid; any other
// source status fails with InvalidTransitionError.
func (o *Order) Ship(now time.Time) error {
	if o.status != Paid {
		return NewInvalidTransitionError(o.id, o.status, Shipped)
	}
	return o.applyStatus(Shipped, now)
}

// Complete transitions the order to Completed. Valid only from Shipped; any
// other source status fails with InvalidTransitionError.
func (o *Order) Complete(now time.Time) error {
	if o.status != Shipped {
		return NewInvalidTransitionError(o.id, o.status, Completed)
	}
	return o.applyStatus(Completed, now)
}

// applyStatus performs the status write and the history append together.
// Every transition goes through here, so status can never change without a
// matching StatusChange record.
func (o *Order) applyStatus(next Status, now time.Time) error {
	change, err := NewStatusChange(kernel.NewUUID(), o.id, next, now)
	if err != nil {
		return err
	}

	o.status = next
	o.statusHistory = append(o.statusHistory, change)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
