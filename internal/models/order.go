package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusOrderPlaced    OrderStatus = "Order Placed"
	StatusPacking        OrderStatus = "Packing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCanceled       OrderStatus = "Canceled"
)

// ValidStatus reports whether s is one of the enumerated order statuses.
// Status is a closed set; free text is never stored.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusOrderPlaced, StatusPacking, StatusShipped,
		StatusOutForDelivery, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

type OrderItem struct {
	Name     string `json:"name" bson:"name"`
	Quantity int    `json:"quantity" bson:"quantity"`
	Size     string `json:"size,omitempty" bson:"size,omitempty"`
}

type Address struct {
	FirstName  string `json:"firstName" bson:"firstName"`
	LastName   string `json:"lastName" bson:"lastName"`
	Street     string `json:"street" bson:"street"`
	City       string `json:"city" bson:"city"`
	Barangay   string `json:"barangay" bson:"barangay"`
	Province   string `json:"province" bson:"province"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
	Phone      string `json:"phone" bson:"phone"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `json:"userId" bson:"userId"`
	CustomerName  string             `json:"customerName" bson:"customerName"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Amount        float64            `json:"amount" bson:"amount"`
	Address       Address            `json:"address" bson:"address"`
	Status        OrderStatus        `json:"status" bson:"status"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	Payment       bool               `json:"payment" bson:"payment"`
	Date          time.Time          `json:"date" bson:"date"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type UpdateOrderStatusInput struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// ImportedOrder is one row of a bulk JSON order import, mirroring the
// tabular interchange columns. Missing values are defaulted before the
// order is persisted; a malformed row never aborts the whole import.
type ImportedOrder struct {
	UserID        string      `json:"userId"`
	CustomerName  string      `json:"customerName"`
	Items         []OrderItem `json:"items"`
	Amount        float64     `json:"amount"`
	Status        OrderStatus `json:"status"`
	Date          int64       `json:"date"` // unix milliseconds, 0 when unknown
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Payment       bool        `json:"payment"`
}

type ImportOrdersInput struct {
	Orders []ImportedOrder `json:"orders" binding:"required"`
}
