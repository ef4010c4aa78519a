package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add a priced line item to an
// existing order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	productName string
	price       kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add a line item.
// Rejects invalid input up front with the same typed errors the aggregate
// uses, so callers see one error vocabulary either way.
func NewAddOrderItemCommand(orderID kernel.UUID, productName string, price kernel.Money, quantity int) (AddOrderItemCommand, error) {
	itemCommand := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setProductName(productName),
		itemCommand.setPrice(price),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to add to.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductName returns the name of the ordered product.
func (c AddOrderItemCommand) ProductName() string {
	return c.productName
}

// Price returns the unit price.
func (c AddOrderItemCommand) Price() kernel.Money {
	return c.price
}

// Quantity returns the number of units.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}

	c.productName = productName
	return nil
}

func (c *AddOrderItemCommand) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return order.NewInvalidPriceError(price)
	}

	c.price = price
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return order.NewInvalidQuantityError(quantity)
	}

	c.quantity = quantity
	return nil
}
