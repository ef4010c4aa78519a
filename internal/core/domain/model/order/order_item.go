package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")

// OrderItem is a priced line item owned by an Order. Items are immutable once
// created; the subtotal is derived from price and quantity.
//
// OrderItem follows these invariants:
//   - Product name must not be empty
//   - Price must not be negative
//   - Quantity must be greater than zero
//
// An invalid item fails construction and is never attached to an order or
// stored.
type OrderItem struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productName string
	price       kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewOrderItem creates a new OrderItem with validation.
// A non-positive quantity fails with InvalidQuantityError and a negative
// price with InvalidPriceError, so callers can distinguish the two.
func NewOrderItem(id, orderID kernel.UUID, productName string, price kernel.Money, quantity int) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductName(productName),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistent storage without
// re-running creation-time validation. Every field is set explicitly.
func RestoreOrderItem(id, orderID kernel.UUID, productName string, price kernel.Money, quantity int) *OrderItem {
	return &OrderItem{
		id:          id,
		orderID:     orderID,
		productName: productName,
		price:       price,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the OrderItem was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// ProductName returns the name of the ordered product.
func (i *OrderItem) ProductName() string {
	return i.productName
}

// Price returns the unit price.
func (i *OrderItem) Price() kernel.Money {
	return i.price
}

// Quantity returns the number of units.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i *OrderItem) Subtotal() kernel.Money {
	return i.price.Mul(i.quantity)
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *OrderItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return NewInvalidPriceError(price)
	}
	i.price = price
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return NewInvalidQuantityError(quantity)
	}
	i.quantity = quantity
	return nil
}
