package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrOrderAlreadyPaid  = errors.New("order is already paid")
	ErrOrderCancelled    = errors.New("order is cancelled")
	ErrInvalidQuantity   = errors.New("quantity is invalid")
	ErrInvalidPrice      = errors.New("price is invalid")
	ErrInvalidAmount     = errors.New("amount is invalid")
	ErrInvalidTransition = errors.New("status transition is invalid")
)

// OrderAlreadyPaidError indicates an attempt to pay or cancel an order that
// has already been paid (or has progressed past payment).
type OrderAlreadyPaidError struct {
	OrderID kernel.UUID
}

// NewOrderAlreadyPaidError creates an OrderAlreadyPaidError for the given order.
func NewOrderAlreadyPaidError(orderID kernel.UUID) *OrderAlreadyPaidError {
	return &OrderAlreadyPaidError{OrderID: orderID}
}

func (e *OrderAlreadyPaidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderAlreadyPaid, e.OrderID)
}

func (e *OrderAlreadyPaidError) Unwrap() error {
	return ErrOrderAlreadyPaid
}

// OrderCancelledError indicates an operation on a cancelled order.
type OrderCancelledError struct {
	OrderID kernel.UUID
}

// NewOrderCancelledError creates an OrderCancelledError for the given order.
func NewOrderCancelledError(orderID kernel.UUID) *OrderCancelledError {
	return &OrderCancelledError{OrderID: orderID}
}

func (e *OrderCancelledError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderCancelled, e.OrderID)
}

func (e *OrderCancelledError) Unwrap() error {
	return ErrOrderCancelled
}

// InvalidQuantityError indicates a line item quantity that is not positive.
type InvalidQuantityError struct {
	Quantity int
}

// NewInvalidQuantityError creates an InvalidQuantityError for the given value.
func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d is not greater than 0", ErrInvalidQuantity, e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// InvalidPriceError indicates a negative line item price.
type InvalidPriceError struct {
	Price kernel.Money
}

// NewInvalidPriceError creates an InvalidPriceError for the given value.
func NewInvalidPriceError(price kernel.Money) *InvalidPriceError {
	return &InvalidPriceError{Price: price}
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s: %s is negative", ErrInvalidPrice, e.Price)
}

func (e *InvalidPriceError) Unwrap() error {
	return ErrInvalidPrice
}

// InvalidAmountError indicates a monetary amount that could not be accepted,
// such as malformed decimal input at the transport boundary.
type InvalidAmountError struct {
	Amount string
}

// NewInvalidAmountError creates an InvalidAmountError for the given raw value.
func NewInvalidAmountError(amount string) *InvalidAmountError {
	return &InvalidAmountError{Amount: amount}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidAmount, e.Amount)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}

// InvalidTransitionError indicates an action that is not permitted from the
// order's current status, such as shipping before payment or completing
// before shipment.
type InvalidTransitionError struct {
	OrderID   kernel.UUID
	From      Status
	Attempted Status
}

// NewInvalidTransitionError creates an InvalidTransitionError describing the
// rejected (from -> attempted) pair.
func NewInvalidTransitionError(orderID kernel.UUID, from, attempted Status) *InvalidTransitionError {
	return &InvalidTransitionError{OrderID: orderID, From: from, Attempted: attempted}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: order %s cannot go from %s to %s",
		ErrInvalidTransition, e.OrderID, e.From, e.Attempted)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
