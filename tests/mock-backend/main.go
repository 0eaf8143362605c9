// Mock backend order service for local development. Serves the endpoints
// driver-assist calls with fixture data, so the BFF can run without the
// real order service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type driver struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type order struct {
	ID         string         `json:"id"`
	DriverID   string         `json:"driverId"`
	Customer   map[string]any `json:"customer"`
	Address    map[string]any `json:"address"`
	Items      []map[string]any `json:"items"`
	Status     string         `json:"status"`
	Priority   string         `json:"priority"`
	TotalValue float64        `json:"totalValue"`
	Window     window         `json:"deliveryWindow"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

var drivers = map[string]driver{
	"driver-123": {ID: "driver-123", Name: "João Silva", Phone: "5511999999999"},
	"driver-456": {ID: "driver-456", Name: "Maria Santos", Phone: "5511988888888"},
}

var orders = map[string]*order{}

func seedOrders() {
	now := time.Now()
	orders["order-1234"] = &order{
		ID:       "order-1234",
		DriverID: "driver-123",
		Customer: map[string]any{
			"id": "customer-001", "name": "Cliente Test",
			"phone": "5511977777777", "notes": "Ring the doorbell",
		},
		Address: map[string]any{
			"street": "Rua das Flores", "number": "123", "complement": "Apt 45",
			"neighborhood": "Jardim Paulista", "city": "São Paulo",
			"state": "SP", "zipcode": "01234567",
		},
		Items: []map[string]any{
			{"id": "item-001", "name": "Product A", "quantity": 2, "price": 50.0},
			{"id": "item-002", "name": "Product B", "quantity": 1, "price": 30.0},
		},
		Status:     "pending",
		Priority:   "normal",
		TotalValue: 130.0,
		Window:     window{Start: now, End: now.Add(time.Hour)},
		Notes:      "Handle with care",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	orders["order-5678"] = &order{
		ID:       "order-5678",
		DriverID: "driver-123",
		Customer: map[string]any{
			"id": "customer-002", "name": "Maria Oliveira", "phone": "5511966666666",
		},
		Address: map[string]any{
			"street": "Av. Paulista", "number": "1000",
			"neighborhood": "Bela Vista", "city": "São Paulo",
			"state": "SP", "zipcode": "01310100",
		},
		Items: []map[string]any{
			{"id": "item-003", "name": "Product C", "quantity": 1, "price": 75.0},
		},
		Status:     "confirmed",
		Priority:   "urgent",
		TotalValue: 75.0,
		Window:     window{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func writeJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func main() {
	addr := flag.String("addr", ":4000", "listen address")
	flag.Parse()
	seedOrders()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})

	mux.HandleFunc("GET /drivers/{id}", func(w http.ResponseWriter, r *http.Request) {
		d, ok := drivers[r.PathValue("id")]
		if !ok {
			writeJSON(w, map[string]string{"message": "driver not found"}, http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"driver": d}, http.StatusOK)
	})

	mux.HandleFunc("GET /drivers/{id}/orders", func(w http.ResponseWriter, r *http.Request) {
		statuses := strings.Split(r.URL.Query().Get("status"), ",")
		var result []*order
		for _, o := range orders {
			if o.DriverID != r.PathValue("id") {
				continue
			}
			for _, s := range statuses {
				if o.Status == s || s == "" {
					result = append(result, o)
					break
				}
			}
		}
		writeJSON(w, map[string]any{"orders": result}, http.StatusOK)
	})

	mux.HandleFunc("GET /orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		o, ok := orders[r.PathValue("id")]
		if !ok {
			writeJSON(w, map[string]string{"message": "order not found"}, http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"order": o}, http.StatusOK)
	})

	mux.HandleFunc("PATCH /orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		o, ok := orders[r.PathValue("id")]
		if !ok {
			writeJSON(w, map[string]string{"message": "order not found"}, http.StatusNotFound)
			return
		}
		var body struct {
			Status string `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		o.Status = body.Status
		o.UpdatedAt = time.Now()
		writeJSON(w, map[string]any{"order": o}, http.StatusOK)
	})

	mux.HandleFunc("POST /orders/{id}/confirm", func(w http.ResponseWriter, r *http.Request) {
		o, ok := orders[r.PathValue("id")]
		if !ok {
			writeJSON(w, map[string]string{"message": "order not found"}, http.StatusNotFound)
			return
		}
		o.Status = "delivered"
		o.UpdatedAt = time.Now()
		writeJSON(w, map[string]any{"order": o}, http.StatusOK)
	})

	mux.HandleFunc("POST /orders/{id}/issues", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := orders[r.PathValue("id")]; !ok {
			writeJSON(w, map[string]string{"message": "order not found"}, http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"success": true}, http.StatusCreated)
	})

	fmt.Println("mock order service listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
