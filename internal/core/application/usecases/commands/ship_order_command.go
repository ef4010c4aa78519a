package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a request to ship a paid order.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship the given order.
func NewShipOrderCommand(orderID kernel.UUID) (ShipOrderCommand, error) {
	shipCommand := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipCommand.setOrderID(orderID); err != nil {
		return ShipOrderCommand{}, err
	}

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
