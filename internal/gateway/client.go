package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/fleetline/driver-assist/internal/config"
	"github.com/fleetline/driver-assist/internal/entities"
	"github.com/fleetline/driver-assist/pkg/backoff"

	"github.com/google/uuid"
)

// activeStatuses is the implicit filter for a driver's working list.
const activeStatuses = "pending,confirmed,in_transit"

// Client is a typed facade over the backend order service. It is
// stateless and safe for concurrent use; reads are retried with
// exponential backoff, writes get a single attempt.
type Client struct {
	logger  *slog.Logger
	http    *http.Client
	baseURL string
	token   string
	retry   backoff.Config
}

func New(logger *slog.Logger, cfg config.Backend) *Client {
	return &Client{
		logger:  logger.With(slog.String("component", "gateway")),
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		retry: backoff.Config{
			MaxAttempts:  cfg.RetryMaxAttempts,
			InitialDelay: cfg.RetryInitialDelay,
		},
	}
}

func (c *Client) DriverOrders(ctx context.Context, driverID string, date time.Time) ([]entities.Order, error) {
	query := url.Values{
		"date":   {date.Format(time.DateOnly)},
		"status": {activeStatuses},
	}
	path := fmt.Sprintf("/drivers/%s/orders?%s", url.PathEscape(driverID), query.Encode())

	env, err := retried(ctx, c, "driver_orders", func() (ordersEnvelope, error) {
		var env ordersEnvelope
		return env, c.doJSON(ctx, "driver_orders", http.MethodGet, path, nil, &env)
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch driver orders",
			slog.Any("error", err), slog.String("driver_id", driverID))
		return nil, err
	}

	c.logger.InfoContext(ctx, "fetched driver orders",
		slog.String("driver_id", driverID), slog.Int("count", len(env.Orders)))
	return ordersDTOToEntities(env.Orders), nil
}

func (c *Client) OrderDetails(ctx context.Context, orderID string) (entities.Order, error) {
	path := "/orders/" + url.PathEscape(orderID)

	env, err := retried(ctx, c, "order_details", func() (orderEnvelope, error) {
		var env orderEnvelope
		return env, c.doJSON(ctx, "order_details", http.MethodGet, path, nil, &env)
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch order",
			slog.Any("error", err), slog.String("order_id", orderID))
		return entities.Order{}, err
	}

	return orderDTOToEntity(env.Order), nil
}

func (c *Client) DriverInfo(ctx context.Context, driverID string) (entities.Driver, error) {
	path := "/drivers/" + url.PathEscape(driverID)

	env, err := retried(ctx, c, "driver_info", func() (driverEnvelope, error) {
		var env driverEnvelope
		return env, c.doJSON(ctx, "driver_info", http.MethodGet, path, nil, &env)
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch driver info",
			slog.Any("error", err), slog.String("driver_id", driverID))
		return entities.Driver{}, err
	}

	return driverDTOToEntity(env.Driver), nil
}

// UpdateOrderStatus is a non-idempotent write, so it gets exactly one
// attempt. Retrying a write with an idempotency key is the caller's call.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, notes string) (entities.Order, error) {
	path := fmt.Sprintf("/orders/%s/status", url.PathEscape(orderID))
	body := statusUpdateRequest{
		Status:    string(status),
		Notes:     notes,
		Timestamp: time.Now().UTC(),
	}

	var env orderEnvelope
	if err := c.doJSON(ctx, "update_status", http.MethodPatch, path, body, &env); err != nil {
		c.logger.ErrorContext(ctx, "failed to update order status",
			slog.Any("error", err), slog.String("order_id", orderID))
		return entities.Order{}, err
	}

	c.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID), slog.String("status", string(status)))
	return orderDTOToEntity(env.Order), nil
}

func (c *Client) ConfirmDelivery(ctx context.Context, orderID, notes, photo string) (entities.Order, error) {
	path := fmt.Sprintf("/orders/%s/confirm", url.PathEscape(orderID))
	body := confirmRequest{
		Status:    string(entities.StatusDelivered),
		Notes:     notes,
		Photo:     photo,
		Timestamp: time.Now().UTC(),
	}

	var env orderEnvelope
	if err := c.doJSON(ctx, "confirm_delivery", http.MethodPost, path, body, &env); err != nil {
		c.logger.ErrorContext(ctx, "failed to confirm delivery",
			slog.Any("error", err), slog.String("order_id", orderID))
		return entities.Order{}, err
	}

	c.logger.InfoContext(ctx, "delivery confirmed", slog.String("order_id", orderID))
	return orderDTOToEntity(env.Order), nil
}

func (c *Client) ReportIssue(ctx context.Context, orderID, issueType, description string) error {
	path := fmt.Sprintf("/orders/%s/issues", url.PathEscape(orderID))
	body := issueRequest{
		IssueType:   issueType,
		Description: description,
		Timestamp:   time.Now().UTC(),
	}

	if err := c.doJSON(ctx, "report_issue", http.MethodPost, path, body, nil); err != nil {
		c.logger.ErrorContext(ctx, "failed to report issue",
			slog.Any("error", err), slog.String("order_id", orderID))
		return err
	}

	c.logger.InfoContext(ctx, "issue reported",
		slog.String("order_id", orderID), slog.String("issue_type", issueType))
	return nil
}

// HealthCheck never returns an error: any failure, HTTP or transport,
// reads as an unhealthy backend.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if err := c.doJSON(ctx, "health", http.MethodGet, "/health", nil, nil); err != nil {
		c.logger.WarnContext(ctx, "backend health check failed", slog.Any("error", err))
		return false
	}
	return true
}

// retried wraps a read in the backoff executor. Failures that a repeat
// cannot fix are excluded from retrying.
func retried[T any](ctx context.Context, c *Client, op string, fn func() (T, error)) (T, error) {
	attempts := 0
	return backoff.RetryValue(ctx, c.retry, func() (T, error) {
		attempts++
		if attempts > 1 {
			outboundRetries.WithLabelValues(op).Inc()
		}
		return fn()
	}, ErrBadRequest, ErrUnauthorized, ErrNotFound)
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	outboundDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		outboundRequests.WithLabelValues(op, "unreachable").Inc()
		return normalizeTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := normalizeStatus(resp.StatusCode, readErrorMessage(resp.Body))
		outboundRequests.WithLabelValues(op, kindLabel(apiErr)).Inc()
		return apiErr
	}

	outboundRequests.WithLabelValues(op, "success").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			kind:    ErrUnknown,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("malformed response body: %s", err),
		}
	}
	return nil
}

func readErrorMessage(body io.Reader) string {
	var env errorEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}

func kindLabel(e *Error) string {
	switch e.kind {
	case ErrBadRequest:
		return "bad_request"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrNotFound:
		return "not_found"
	case ErrRateLimited:
		return "rate_limited"
	case ErrUnavailable:
		return "unavailable"
	case ErrUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}
