package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
	"github.com/fleetline/driver-assist/internal/gateway"
	"github.com/fleetline/driver-assist/pkg/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	DailySummary(ctx context.Context, driverID string, date time.Time) (entities.DailySummary, string, error)
	OrderDetails(ctx context.Context, orderID string) (entities.Order, string, error)
	ConfirmDelivery(ctx context.Context, orderID, notes, photo string) (entities.Order, string, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, notes string) (entities.Order, string, error)
	ReportIssue(ctx context.Context, orderID, issueType, description string) error
	Health(ctx context.Context) bool
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	env      string
	started  time.Time
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, env string) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
		env:      env,
		started:  time.Now(),
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/api/orders/daily-summary/{driver_id}", h.GetDailySummary)
	r.Get("/api/orders/{order_id}", h.GetOrderDetails)
	r.Post("/api/orders/confirm", h.ConfirmDelivery)
	r.Post("/api/orders/issue", h.ReportIssue)
	r.Patch("/api/orders/{order_id}/status", h.UpdateOrderStatus)

	r.Get("/health", h.HealthCheck)

	r.Post("/webhook/chat", h.ChatWebhook)
	r.Post("/webhook/automation", h.AutomationWebhook)
}

// GetDailySummary возвращает сводку дня.
// @Summary      Daily summary for a driver
// @Description  Aggregates the driver's orders for a date and renders the summary message
// @Tags         orders
// @Param        driver_id  path   string  true   "Driver identifier"
// @Param        date       query  string  false  "Date (YYYY-MM-DD), defaults to today"
// @Success      200  {object}  httpx.Response
// @Failure      500  {object}  httpx.Response
// @Router       /api/orders/daily-summary/{driver_id} [get]
func (h *HTTPHandler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	driverID := chi.URLParam(r, "driver_id")

	if err := h.validate.Var(driverID, "required"); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	date := startOfDay(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			httpx.WriteError(w, "INVALID_DATE", "date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	sum, message, err := h.svc.DailySummary(ctx, driverID, date)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get daily summary",
			slog.Any("error", err), slog.String("driver_id", driverID))
		httpx.WriteError(w, "DAILY_SUMMARY_ERROR", "failed to fetch daily summary", http.StatusInternalServerError)
		return
	}

	httpx.WriteData(w, map[string]any{
		"summary":          SummaryEntityToJSON(sum),
		"formattedMessage": message,
	}, http.StatusOK)
}

// GetOrderDetails возвращает заказ.
// @Summary      Order details
// @Tags         orders
// @Param        order_id  path  string  true  "Order identifier"
// @Success      200  {object}  httpx.Response
// @Failure      404  {object}  httpx.Response
// @Failure      500  {object}  httpx.Response
// @Router       /api/orders/{order_id} [get]
func (h *HTTPHandler) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	order, message, err := h.svc.OrderDetails(ctx, orderID)

	if errors.Is(err, gateway.ErrNotFound) {
		httpx.WriteError(w, "ORDER_NOT_FOUND", "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err), slog.String("order_id", orderID))
		httpx.WriteError(w, "ORDER_FETCH_ERROR", "failed to fetch order details", http.StatusInternalServerError)
		return
	}

	httpx.WriteData(w, map[string]any{
		"order":            OrderEntityToJSON(order),
		"formattedMessage": message,
	}, http.StatusOK)
}

// ConfirmDelivery подтверждает доставку.
// @Summary      Confirm a delivery
// @Tags         orders
// @Param        request  body  ConfirmRequest  true  "Confirmation payload"
// @Success      200  {object}  httpx.Response
// @Failure      400  {object}  httpx.Response
// @Failure      500  {object}  httpx.Response
// @Router       /api/orders/confirm [post]
func (h *HTTPHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ConfirmRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "INVALID_BODY", "request body must be valid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	order, message, err := h.svc.ConfirmDelivery(ctx, req.OrderID, req.Notes, req.Photo)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to confirm delivery",
			slog.Any("error", err), slog.String("order_id", req.OrderID))
		httpx.WriteError(w, "CONFIRMATION_ERROR", "failed to confirm delivery", http.StatusInternalServerError)
		return
	}

	httpx.WriteData(w, map[string]any{
		"order":            OrderEntityToJSON(order),
		"formattedMessage": message,
	}, http.StatusOK)
}

// ReportIssue регистрирует проблему с заказом.
// @Summary      Report a delivery issue
// @Tags         orders
// @Param        request  body  IssueRequest  true  "Issue payload"
// @Success      200  {object}  httpx.Response
// @Failure      400  {object}  httpx.Response
// @Failure      500  {object}  httpx.Response
// @Router       /api/orders/issue [post]
func (h *HTTPHandler) ReportIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req IssueRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "INVALID_BODY", "request body must be valid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	if err := h.svc.ReportIssue(ctx, req.OrderID, req.IssueType, req.Description); err != nil {
		h.logger.ErrorContext(ctx, "failed to report issue",
			slog.Any("error", err), slog.String("order_id", req.OrderID))
		httpx.WriteError(w, "ISSUE_REPORT_ERROR", "failed to report issue", http.StatusInternalServerError)
		return
	}

	httpx.WriteData(w, map[string]any{
		"message": "Issue reported successfully",
	}, http.StatusOK)
}

// UpdateOrderStatus меняет статус заказа.
// @Summary      Update order status
// @Tags         orders
// @Param        order_id  path  string               true  "Order identifier"
// @Param        request   body  StatusUpdateRequest  true  "Status payload"
// @Success      200  {object}  httpx.Response
// @Failure      400  {object}  httpx.Response
// @Failure      404  {object}  httpx.Response
// @Failure      500  {object}  httpx.Response
// @Router       /api/orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	var req StatusUpdateRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "INVALID_BODY", "request body must be valid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	order, message, err := h.svc.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status), req.Notes)

	if errors.Is(err, gateway.ErrNotFound) {
		httpx.WriteError(w, "ORDER_NOT_FOUND", "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Any("error", err), slog.String("order_id", orderID))
		httpx.WriteError(w, "STATUS_UPDATE_ERROR", "failed to update order status", http.StatusInternalServerError)
		return
	}

	httpx.WriteData(w, map[string]any{
		"order":            OrderEntityToJSON(order),
		"formattedMessage": message,
	}, http.StatusOK)
}

// HealthCheck отражает состояние сервиса и его зависимостей.
// @Summary      Service health
// @Tags         health
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /health [get]
func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	backendHealthy := h.svc.Health(r.Context())

	status := "ok"
	backendStatus := "ok"
	code := http.StatusOK
	if !backendHealthy {
		status = "degraded"
		backendStatus = "down"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"status":      status,
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.started).Seconds(),
		"environment": h.env,
		"services": map[string]string{
			"orderService": backendStatus,
		},
	})
}

// ChatWebhook accepts inbound chat-network callbacks. Payloads are only
// acknowledged and logged; interpreting them happens upstream.
func (h *HTTPHandler) ChatWebhook(w http.ResponseWriter, r *http.Request) {
	h.acknowledgeWebhook(w, r, "chat")
}

func (h *HTTPHandler) AutomationWebhook(w http.ResponseWriter, r *http.Request) {
	h.acknowledgeWebhook(w, r, "automation")
}

func (h *HTTPHandler) acknowledgeWebhook(w http.ResponseWriter, r *http.Request, source string) {
	var payload map[string]any
	if err := httpx.DecodeBody(r, &payload); err != nil {
		httpx.WriteError(w, "INVALID_BODY", "request body must be valid JSON", http.StatusBadRequest)
		return
	}

	h.logger.InfoContext(r.Context(), "webhook received",
		slog.String("source", source), slog.Int("fields", len(payload)))

	httpx.WriteData(w, nil, http.StatusOK)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
