package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetline/driver-assist/internal/config"
	"github.com/fleetline/driver-assist/internal/entities"
	"github.com/fleetline/driver-assist/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderJSON = `{
	"id": "order-1234",
	"driverId": "driver-123",
	"customer": {"id": "customer-456", "name": "Maria Santos", "phone": "5511912345678"},
	"address": {
		"street": "Rua das Flores", "number": "123", "complement": "Apto 45",
		"neighborhood": "Jardim Paulista", "city": "São Paulo",
		"state": "SP", "zipcode": "01234567"
	},
	"items": [
		{"id": "item-1", "name": "Notebook Dell", "quantity": 2, "price": 3500},
		{"id": "item-2", "name": "Mouse Logitech", "quantity": 1, "price": 150}
	],
	"status": "pending",
	"priority": "urgent",
	"totalValue": 7150,
	"deliveryWindow": {"start": "2025-11-06T14:00:00Z", "end": "2025-11-06T17:00:00Z"},
	"notes": "Entregar na portaria.",
	"createdAt": "2025-11-06T08:00:00Z",
	"updatedAt": "2025-11-06T08:00:00Z"
}`

func newClient(t *testing.T, baseURL string) *gateway.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.New(logger, config.Backend{
		BaseURL:           baseURL,
		Token:             "test-token",
		Timeout:           2 * time.Second,
		RetryMaxAttempts:  3,
		RetryInitialDelay: time.Millisecond,
	})
}

func TestClient_HealthCheck(t *testing.T) {
	t.Run("healthy backend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		assert.True(t, newClient(t, srv.URL).HealthCheck(context.Background()))
	})

	t.Run("http error resolves to false", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		assert.False(t, newClient(t, srv.URL).HealthCheck(context.Background()))
	})

	t.Run("network error resolves to false", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		assert.False(t, newClient(t, srv.URL).HealthCheck(context.Background()))
	})
}

func TestClient_OrderDetails(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/order-1234", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Write([]byte(`{"order": ` + orderJSON + `}`))
		}))
		defer srv.Close()

		order, err := newClient(t, srv.URL).OrderDetails(context.Background(), "order-1234")
		require.NoError(t, err)

		assert.Equal(t, "order-1234", order.ID)
		assert.Equal(t, "Maria Santos", order.Customer.Name)
		assert.Equal(t, entities.PriorityUrgent, order.Priority)
		assert.Equal(t, 7150.0, order.TotalValue)
		assert.Len(t, order.Items, 2)
	})

	t.Run("404 maps to ErrNotFound without retrying", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "order not found"}`))
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL).OrderDetails(context.Background(), "missing")
		assert.ErrorIs(t, err, gateway.ErrNotFound)
		assert.Equal(t, 1, requests)
	})

	t.Run("retries transient 500 then succeeds", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			if requests < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"order": ` + orderJSON + `}`))
		}))
		defer srv.Close()

		order, err := newClient(t, srv.URL).OrderDetails(context.Background(), "order-1234")
		require.NoError(t, err)
		assert.Equal(t, "order-1234", order.ID)
		assert.Equal(t, 3, requests)
	})

	t.Run("exhausted retries surface the last failure", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL).OrderDetails(context.Background(), "order-1234")
		assert.ErrorIs(t, err, gateway.ErrUnavailable)
		assert.Equal(t, 3, requests)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newClient(t, srv.URL).OrderDetails(context.Background(), "order-1234")
		assert.ErrorIs(t, err, gateway.ErrUnreachable)
	})
}

func TestClient_DriverOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drivers/driver-123/orders", r.URL.Path)
		assert.Equal(t, "2025-11-06", r.URL.Query().Get("date"))
		assert.Equal(t, "pending,confirmed,in_transit", r.URL.Query().Get("status"))
		w.Write([]byte(`{"orders": [` + orderJSON + `]}`))
	}))
	defer srv.Close()

	date := time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC)
	orders, err := newClient(t, srv.URL).DriverOrders(context.Background(), "driver-123", date)
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "driver-123", orders[0].DriverID)
}

func TestClient_DriverInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drivers/driver-123", r.URL.Path)
		w.Write([]byte(`{"driver": {"id": "driver-123", "name": "João Silva", "phone": "5511987654321"}}`))
	}))
	defer srv.Close()

	driver, err := newClient(t, srv.URL).DriverInfo(context.Background(), "driver-123")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", driver.Name)
}

func TestClient_ConfirmDelivery(t *testing.T) {
	t.Run("success stamps delivered", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders/order-1234/confirm", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "delivered", body["status"])
			assert.Equal(t, "left at door", body["notes"])
			assert.NotEmpty(t, body["timestamp"])

			var order map[string]any
			require.NoError(t, json.Unmarshal([]byte(orderJSON), &order))
			order["status"] = "delivered"
			json.NewEncoder(w).Encode(map[string]any{"order": order})
		}))
		defer srv.Close()

		order, err := newClient(t, srv.URL).ConfirmDelivery(context.Background(), "order-1234", "left at door", "")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDelivered, order.Status)
	})

	t.Run("writes are never retried", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL).ConfirmDelivery(context.Background(), "order-1234", "", "")
		assert.ErrorIs(t, err, gateway.ErrUnavailable)
		assert.Equal(t, 1, requests)
	})
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/orders/order-1234/status", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "in_transit", body["status"])

		var order map[string]any
		require.NoError(t, json.Unmarshal([]byte(orderJSON), &order))
		order["status"] = "in_transit"
		json.NewEncoder(w).Encode(map[string]any{"order": order})
	}))
	defer srv.Close()

	order, err := newClient(t, srv.URL).UpdateOrderStatus(context.Background(), "order-1234", entities.StatusInTransit, "on my way")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInTransit, order.Status)
}

func TestClient_ReportIssue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/order-1234/issues", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "customer_absent", body["issueType"])
			assert.Equal(t, "nobody home", body["description"])

			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		err := newClient(t, srv.URL).ReportIssue(context.Background(), "order-1234", "customer_absent", "nobody home")
		assert.NoError(t, err)
	})

	t.Run("unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		err := newClient(t, srv.URL).ReportIssue(context.Background(), "order-1234", "damage", "broken box")
		assert.ErrorIs(t, err, gateway.ErrUnauthorized)
	})
}

func TestClient_ErrorMessages(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantKind    error
		wantMessage string
	}{
		{
			name:        "bad request includes backend message",
			status:      http.StatusBadRequest,
			body:        `{"message": "invalid driver id"}`,
			wantKind:    gateway.ErrBadRequest,
			wantMessage: "Bad Request: invalid driver id",
		},
		{
			name:        "not found includes backend message",
			status:      http.StatusNotFound,
			body:        `{"error": "order not found"}`,
			wantKind:    gateway.ErrNotFound,
			wantMessage: "Not Found: order not found",
		},
		{
			name:        "unknown status falls through",
			status:      http.StatusTeapot,
			body:        `{}`,
			wantKind:    gateway.ErrUnknown,
			wantMessage: "API error (418): API request failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := newClient(t, srv.URL).ReportIssue(context.Background(), "order-1234", "damage", "broken box")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantKind)
			assert.Equal(t, tc.wantMessage, err.Error())
		})
	}
}
