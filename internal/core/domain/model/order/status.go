package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Paid ──> Shipped ──> Completed
//	   │
//	   └──> Cancelled
//
// Cancelled and Completed are final. The transition rules themselves live on
// the Order aggregate, where every (state, action) pair is handled explicitly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a new order. The order can still be
	// paid or cancelled, and items can be added.
	Created

	// Paid indicates the order has been paid for. A paid order cannot be
	// paid again or cancelled.
	Paid

	// Cancelled indicates the order was cancelled before payment.
	// This is a final state.
	Cancelled

	// Shipped indicates the paid order has been handed to delivery.
	Shipped

	// Completed indicates the shipped order reached the customer.
	// This is a final state.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Paid:      "PAID",
		Cancelled: "CANCELLED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Paid:      "PAID",
		Cancelled: "CANCELLED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid. Used when statuses arrive from
// external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString maps a stored status name back to its Status value.
// Unrecognized names map to Unknown.
func StatusFromString(s string) Status {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status
		}
	}
	return Unknown
}

// IsFinal reports whether no transition leaves this status.
func (s Status) IsFinal() bool {
	return s == Cancelled || s == Completed
}
