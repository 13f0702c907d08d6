// Package store holds a small order domain used as build input.
package store

import (
	"errors"
	"github.com/shopspring/decimal"
	"net/url"
	"time"
)

// Order is a purchase placed by a customer.
type Order struct {
	ID        int64
	Number    string `fixture:",min:8,max:12"`
	Status    OrderStatus
	Customer  *Customer
	Items     []LineItem
	Total     decimal.Decimal
	Notes     *string
	Internal  string `fixture:"-"`
	PlacedAt  time.Time
	ShippedAt *time.Time
}

// Customer places orders.
type Customer struct {
	Name     string
	Email    string `fixture:"email"`
	Homepage *url.URL
	Active   bool
	Address  *Address
}

// Address is a postal address.
type Address struct {
	Street   string
	City     string
	Postcode string `fixture:"postcode"`
	Country  string
}

// LineItem is a product line within an order, the price is a snapshot taken
// when the order was placed.
type LineItem struct {
	Sku       string `fixture:",min:6,max:6"`
	Quantity  int
	UnitPrice float64
	Discount  *float64
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Values lists the declared statuses.
func (OrderStatus) Values() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusCancelled}
}

var ErrEmptyInvoiceNumber = errors.New("invoice number is empty")

// Invoice can only be created through NewInvoice.
type Invoice struct {
	Number   string
	IssuedAt time.Time
	Order    *Order

	sealed bool
}

// NewInvoice issues an invoice.
func NewInvoice(number string, issuedAt time.Time) (*Invoice, error) {
	if number == "" {
		return nil, ErrEmptyInvoiceNumber
	}

	return &Invoice{Number: number, IssuedAt: issuedAt, sealed: true}, nil
}

// Sealed reports whether the invoice was issued by NewInvoice.
func (i *Invoice) Sealed() bool {
	return i != nil && i.sealed
}
