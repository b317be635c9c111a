// Package order implements the in-progress order workflow shared by sales and
// purchases. A Composer holds the working line list for one not-yet-submitted
// order; Submit freezes it into a Completed record for persistence.
package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mvaldezl/ferreteria-api/internal/domain/enum"
)

var (
	// ErrDuplicateLine is returned when a product already has a line in the order
	ErrDuplicateLine = errors.New("product already added to order")
	// ErrInvalidQuantity is returned when a quantity is zero or negative
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrLineNotFound is returned when a line index is out of range
	ErrLineNotFound = errors.New("line not found")
	// ErrEmptyOrder is returned when submitting an order with no lines
	ErrEmptyOrder = errors.New("order has no lines")
	// ErrMissingCounterpart is returned when submitting without a customer or supplier
	ErrMissingCounterpart = errors.New("order has no counterpart selected")
)

// Line is one product entry in the working order. Name and UnitPrice are
// snapshots taken when the line was added and are never re-fetched.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"` // cents
	Subtotal  int64     `json:"subtotal"`   // cents, Quantity * UnitPrice
}

// Completed is an immutable submitted order ready for persistence
type Completed struct {
	CounterpartID   uuid.UUID
	CounterpartName string
	Lines           []Line
	PaymentMethod   enum.PaymentMethod
	Total           int64 // cents
	CreatedAt       time.Time
}

// Composer maintains the working line list for one in-progress order.
// It is owned by a single request and is not safe for concurrent use.
type Composer struct {
	counterpartID   uuid.UUID
	counterpartName string
	paymentMethod   enum.PaymentMethod
	lines           []Line
}

// NewComposer returns an empty composer
func NewComposer() *Composer {
	return &Composer{}
}

// SetCounterpart selects the customer or supplier for the order
func (c *Composer) SetCounterpart(id uuid.UUID, name string) {
	c.counterpartID = id
	c.counterpartName = name
}

// SetPaymentMethod sets the payment method for the order
func (c *Composer) SetPaymentMethod(method enum.PaymentMethod) {
	c.paymentMethod = method
}

// AddLine appends a line for the given product with quantity 1, snapshotting
// the current price. Returns ErrDuplicateLine if the product is already in
// the order; the line list is left unchanged on failure.
func (c *Composer) AddLine(productID uuid.UUID, name string, unitPrice int64) error {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return ErrDuplicateLine
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      name,
		Quantity:  1,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice,
	})
	return nil
}

// SetQuantity updates the quantity of the line at index and recomputes its
// subtotal. Zero and negative quantities are rejected with ErrInvalidQuantity
// and leave the line untouched.
func (c *Composer) SetQuantity(index int, quantity int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	c.lines[index].Quantity = quantity
	c.lines[index].Subtotal = int64(quantity) * c.lines[index].UnitPrice
	return nil
}

// RemoveLine removes the line at index. Remaining lines keep their relative
// order; indices past the removed line shift down by one.
func (c *Composer) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Lines returns a copy of the current line list
func (c *Composer) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Total returns the sum of all line subtotals in cents
func (c *Composer) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal
	}
	return total
}

// Submit freezes the working order into a Completed record and resets the
// composer for reuse. Fails with ErrEmptyOrder if no lines were added and
// ErrMissingCounterpart if no customer or supplier was selected; the working
// state is preserved on failure so the caller can fix and retry.
func (c *Composer) Submit(now time.Time) (*Completed, error) {
	if len(c.lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if c.counterpartID == uuid.Nil {
		return nil, ErrMissingCounterpart
	}

	completed := &Completed{
		CounterpartID:   c.counterpartID,
		CounterpartName: c.counterpartName,
		Lines:           c.Lines(),
		PaymentMethod:   c.paymentMethod,
		Total:           c.Total(),
		CreatedAt:       now,
	}

	*c = Composer{}
	return completed, nil
}
