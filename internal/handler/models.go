package handler

import (
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
)

// Order is the API representation of an order
// swagger:model Order
type Order struct {
	ID             string         `json:"id" validate:"required"`
	DriverID       string         `json:"driverId" validate:"required"`
	Customer       Customer       `json:"customer" validate:"required"`
	Address        Address        `json:"address" validate:"required"`
	Items          []OrderItem    `json:"items" validate:"required,dive"`
	Status         string         `json:"status" validate:"required,oneof=pending confirmed in_transit delivered failed cancelled returned"`
	Priority       string         `json:"priority" validate:"required,oneof=normal high urgent"`
	TotalValue     float64        `json:"totalValue" validate:"gt=0"`
	DeliveryWindow DeliveryWindow `json:"deliveryWindow" validate:"required"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type Customer struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Notes string `json:"notes,omitempty"`
}

type Address struct {
	Street       string       `json:"street" validate:"required"`
	Number       string       `json:"number" validate:"required"`
	Complement   string       `json:"complement,omitempty"`
	Neighborhood string       `json:"neighborhood" validate:"required"`
	City         string       `json:"city" validate:"required"`
	State        string       `json:"state" validate:"required,len=2"`
	Zipcode      string       `json:"zipcode" validate:"required"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OrderItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Price    float64 `json:"price" validate:"gt=0"`
	SKU      string  `json:"sku,omitempty"`
}

type DeliveryWindow struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

// DailySummary is the aggregated view of one driver's day
// swagger:model DailySummary
type DailySummary struct {
	Date            time.Time `json:"date"`
	DriverID        string    `json:"driverId"`
	DriverName      string    `json:"driverName"`
	TotalOrders     int       `json:"totalOrders"`
	CompletedOrders int       `json:"completedOrders"`
	PendingOrders   int       `json:"pendingOrders"`
	UrgentOrders    int       `json:"urgentOrders"`
	Orders          []Order   `json:"orders"`
}

type ConfirmRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Notes   string `json:"notes,omitempty"`
	Photo   string `json:"photo,omitempty"`
}

type IssueRequest struct {
	OrderID     string `json:"orderId" validate:"required"`
	IssueType   string `json:"issueType" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_transit delivered failed cancelled returned"`
	Notes  string `json:"notes,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			SKU:      it.SKU,
		})
	}

	var coords *Coordinates
	if o.Address.Coordinates != nil {
		coords = &Coordinates{
			Latitude:  o.Address.Coordinates.Latitude,
			Longitude: o.Address.Coordinates.Longitude,
		}
	}

	return Order{
		ID:       o.ID,
		DriverID: o.DriverID,
		Customer: Customer{
			ID:    o.Customer.ID,
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
			Email: o.Customer.Email,
			Notes: o.Customer.Notes,
		},
		Address: Address{
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Complement:   o.Address.Complement,
			Neighborhood: o.Address.Neighborhood,
			City:         o.Address.City,
			State:        o.Address.State,
			Zipcode:      o.Address.Zipcode,
			Coordinates:  coords,
		},
		Items:      items,
		Status:     string(o.Status),
		Priority:   string(o.Priority),
		TotalValue: o.TotalValue,
		DeliveryWindow: DeliveryWindow{
			Start: o.Window.Start,
			End:   o.Window.End,
		},
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entities.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			SKU:      it.SKU,
		})
	}

	var coords *entities.Coordinates
	if o.Address.Coordinates != nil {
		coords = &entities.Coordinates{
			Latitude:  o.Address.Coordinates.Latitude,
			Longitude: o.Address.Coordinates.Longitude,
		}
	}

	return entities.Order{
		ID:       o.ID,
		DriverID: o.DriverID,
		Customer: entities.Customer{
			ID:    o.Customer.ID,
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
			Email: o.Customer.Email,
			Notes: o.Customer.Notes,
		},
		Address: entities.Address{
			Street:       o.Address.Street,
			Number:       o.Address.Number,
			Complement:   o.Address.Complement,
			Neighborhood: o.Address.Neighborhood,
			City:         o.Address.City,
			State:        o.Address.State,
			Zipcode:      o.Address.Zipcode,
			Coordinates:  coords,
		},
		Items:      items,
		Status:     entities.OrderStatus(o.Status),
		Priority:   entities.OrderPriority(o.Priority),
		TotalValue: o.TotalValue,
		Window: entities.DeliveryWindow{
			Start: o.DeliveryWindow.Start,
			End:   o.DeliveryWindow.End,
		},
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func SummaryEntityToJSON(s entities.DailySummary) DailySummary {
	orders := make([]Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		orders = append(orders, OrderEntityToJSON(o))
	}

	return DailySummary{
		Date:            s.Date,
		DriverID:        s.DriverID,
		DriverName:      s.DriverName,
		TotalOrders:     s.TotalOrders,
		CompletedOrders: s.CompletedOrders,
		PendingOrders:   s.PendingOrders,
		UrgentOrders:    s.UrgentOrders,
		Orders:          orders,
	}
}
