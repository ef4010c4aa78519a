package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to pay for an order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay the given order.
func NewPayOrderCommand(orderID kernel.UUID) (PayOrderCommand, error) {
	payCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := payCommand.setOrderID(orderID); err != nil {
		return PayOrderCommand{}, err
	}

	return payCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pay.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
