package gateway

import (
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
)

// Wire models for the backend order service JSON API.

type coordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type addressDTO struct {
	Street       string          `json:"street"`
	Number       string          `json:"number"`
	Complement   string          `json:"complement,omitempty"`
	Neighborhood string          `json:"neighborhood"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Zipcode      string          `json:"zipcode"`
	Coordinates  *coordinatesDTO `json:"coordinates,omitempty"`
}

type customerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type orderItemDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	SKU      string  `json:"sku,omitempty"`
}

type deliveryWindowDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type orderDTO struct {
	ID             string            `json:"id"`
	DriverID       string            `json:"driverId"`
	Customer       customerDTO       `json:"customer"`
	Address        addressDTO        `json:"address"`
	Items          []orderItemDTO    `json:"items"`
	Status         string            `json:"status"`
	Priority       string            `json:"priority"`
	TotalValue     float64           `json:"totalValue"`
	DeliveryWindow deliveryWindowDTO `json:"deliveryWindow"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type driverDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ordersEnvelope struct {
	Orders []orderDTO `json:"orders"`
}

type orderEnvelope struct {
	Order orderDTO `json:"order"`
}

type driverEnvelope struct {
	Driver driverDTO `json:"driver"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type statusUpdateRequest struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type confirmRequest struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Photo     string    `json:"photo,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type issueRequest struct {
	IssueType   string    `json:"issueType"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func orderDTOToEntity(o orderDTO) entities.Order {
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

func ordersDTOToEntities(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for _, o := range dtos {
		orders = append(orders, orderDTOToEntity(o))
	}
	return orders
}

func driverDTOToEntity(d driverDTO) entities.Driver {
	return entities.Driver{
		ID:    d.ID,
		Name:  d.Name,
		Phone: d.Phone,
	}
}
