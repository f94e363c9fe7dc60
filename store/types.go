package store

import (
	"time"
)

// Product represents an individual item available for sale.
// We use int64 for prices to represent cents (lowest currency unit) to avoid floating-point errors.
//
//property:get(public),set(public)
type Product struct {
	id          int64  `property:"get(name=\"ID\"),set(disable)"`
	sku         string `property:"get(name=\"SKU\"),set(name=\"SetSKU\")"`
	name        string
	description *string
	priceCents  int64     `property:"clr(public, scope=\"auto\")"`
	inventory   int       `property:"mut(public)"`
	createdAt   time.Time `property:"set(disable)"`
}

// NewProduct returns a product created now.
func NewProduct(id int64, sku string) *Product {
	return &Product{id: id, sku: sku, createdAt: time.Now()}
}

// Order represents a transaction made by a customer. Orders are values:
// setters return a modified copy.
//
//property:get(public),set(public, prefix="with_", type="own")
type Order struct {
	id         int64 `property:"get(name=\"ID\"),set(disable)"`
	customerID int64
	status     OrderStatus `property:"get(type=\"copy\")"`
	items      []OrderItem `property:"get(type=\"clone\"),clr(public, scope=\"auto\")"`
	orderedAt  time.Time   `property:"get(type=\"copy\")"`
}

// NewOrder returns a pending order.
func NewOrder(id int64) Order {
	return Order{id: id, status: StatusPending}
}

// Total returns the order total in cents.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return total
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
//
//property:generate
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int `property:"set(type=\"replace\")"`
	UnitPrice int64
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
