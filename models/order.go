package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// DeliveryType is how the buyer receives the order
type DeliveryType string

const (
	DeliveryCourier DeliveryType = "delivery"
	DeliveryPickup  DeliveryType = "pickup"
)

type Order struct {
	ID              string       `json:"id" gorm:"primaryKey"`
	BuyerID         string       `json:"buyer_id" gorm:"not null;index"`
	RestaurantID    string       `json:"restaurant_id" gorm:"not null;index"`
	Lines           []OrderLine  `json:"lines" gorm:"foreignKey:OrderID"`
	TotalPrice      float64      `json:"total_price"` // frozen at checkout, never recomputed
	DeliveryAddress string       `json:"delivery_address"`
	DeliveryType    DeliveryType `json:"delivery_type" gorm:"not null"`
	Status          OrderStatus  `json:"status" gorm:"not null;default:'pending'"`
	PaymentMethod   string       `json:"payment_method"` // opaque label, e.g. "card" or "cash"
	Notes           string       `json:"notes"`
	CreatedAt       time.Time    `json:"created_at"`
}

type OrderLine struct {
	ID       uint    `json:"-" gorm:"primaryKey"`
	OrderID  string  `json:"-" gorm:"index"`
	FoodID   string  `json:"food_id" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price"` // snapshot unit price at time of order
}

// Terminal reports whether no further status transition is permitted.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
