package entities

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusInTransit OrderStatus = "in_transit"
	StatusDelivered OrderStatus = "delivered"
	StatusFailed    OrderStatus = "failed"
	StatusCancelled OrderStatus = "cancelled"
	StatusReturned  OrderStatus = "returned"
)

type OrderPriority string

const (
	PriorityNormal OrderPriority = "normal"
	PriorityHigh   OrderPriority = "high"
	PriorityUrgent OrderPriority = "urgent"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Address struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	Zipcode      string
	Coordinates  *Coordinates
}

type Customer struct {
	ID    string
	Name  string
	Phone string
	Email string
	Notes string
}

type OrderItem struct {
	ID       string
	Name     string
	Quantity int
	Price    float64
	SKU      string
}

type DeliveryWindow struct {
	Start time.Time
	End   time.Time
}

type Order struct {
	ID         string
	DriverID   string
	Customer   Customer
	Address    Address
	Items      []OrderItem
	Status     OrderStatus
	Priority   OrderPriority
	TotalValue float64
	Window     DeliveryWindow
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemsTotal recomputes the order value from its line items. The backend
// stays authoritative for TotalValue; this exists only to detect drift.
func (o Order) ItemsTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrDriverNotFound = errors.New("driver not found")
)
