package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/fleetline/driver-assist/internal/entities"
	"github.com/fleetline/driver-assist/internal/format"
	"github.com/fleetline/driver-assist/internal/summary"

	"golang.org/x/sync/errgroup"
)

type OrderGateway interface {
	DriverOrders(ctx context.Context, driverID string, date time.Time) ([]entities.Order, error)
	OrderDetails(ctx context.Context, orderID string) (entities.Order, error)
	DriverInfo(ctx context.Context, driverID string) (entities.Driver, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, notes string) (entities.Order, error)
	ConfirmDelivery(ctx context.Context, orderID, notes, photo string) (entities.Order, error)
	ReportIssue(ctx context.Context, orderID, issueType, description string) error
	HealthCheck(ctx context.Context) bool
}

type DriverCache interface {
	Get(key string) (entities.Driver, bool)
	Set(key string, value entities.Driver)
}

type OrderService struct {
	logger    *slog.Logger
	gateway   OrderGateway
	cache     DriverCache
	formatter *format.Formatter
}

func NewOrderService(logger *slog.Logger, gateway OrderGateway, cache DriverCache, formatter *format.Formatter) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "orders")),
		gateway:   gateway,
		cache:     cache,
		formatter: formatter,
	}
}

// DailySummary aggregates a driver's orders for one date and renders the
// summary message. Orders and the driver profile are fetched in parallel.
func (s *OrderService) DailySummary(ctx context.Context, driverID string, date time.Time) (entities.DailySummary, string, error) {
	var (
		orders []entities.Order
		driver entities.Driver
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orders, err = s.gateway.DriverOrders(gctx, driverID, date)
		return err
	})

	g.Go(func() error {
		var err error
		driver, err = s.driverInfo(gctx, driverID)
		return err
	})

	if err := g.Wait(); err != nil {
		return entities.DailySummary{}, "", err
	}

	sum := summary.Build(date, driver, orders)
	s.logger.DebugContext(ctx, "daily summary built",
		slog.String("driver_id", driverID),
		slog.Int("total", sum.TotalOrders),
		slog.Int("urgent", sum.UrgentOrders),
	)

	return sum, s.formatter.DailySummary(sum), nil
}

func (s *OrderService) driverInfo(ctx context.Context, driverID string) (entities.Driver, error) {
	if driver, ok := s.cache.Get(driverID); ok {
		return driver, nil
	}

	driver, err := s.gateway.DriverInfo(ctx, driverID)
	if err != nil {
		return entities.Driver{}, err
	}

	s.cache.Set(driverID, driver)
	return driver, nil
}

func (s *OrderService) OrderDetails(ctx context.Context, orderID string) (entities.Order, string, error) {
	order, err := s.gateway.OrderDetails(ctx, orderID)
	if err != nil {
		return entities.Order{}, "", err
	}

	// The backend owns TotalValue; drift against line items is only logged.
	if recomputed := order.ItemsTotal(); math.Abs(recomputed-order.TotalValue) > 0.01 {
		s.logger.WarnContext(ctx, "order total does not match item subtotals",
			slog.String("order_id", order.ID),
			slog.Float64("total_value", order.TotalValue),
			slog.Float64("items_total", recomputed),
		)
	}

	return order, s.formatter.OrderDetails(order), nil
}

func (s *OrderService) OrderList(ctx context.Context, driverID string, date time.Time) ([]entities.Order, string, error) {
	orders, err := s.gateway.DriverOrders(ctx, driverID, date)
	if err != nil {
		return nil, "", err
	}
	return orders, s.formatter.OrderList(orders), nil
}

func (s *OrderService) ConfirmDelivery(ctx context.Context, orderID, notes, photo string) (entities.Order, string, error) {
	order, err := s.gateway.ConfirmDelivery(ctx, orderID, notes, photo)
	if err != nil {
		return entities.Order{}, "", err
	}
	return order, s.formatter.Confirmation(order, nil), nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, notes string) (entities.Order, string, error) {
	order, err := s.gateway.UpdateOrderStatus(ctx, orderID, status, notes)
	if err != nil {
		return entities.Order{}, "", err
	}
	return order, s.formatter.OrderDetails(order), nil
}

func (s *OrderService) ReportIssue(ctx context.Context, orderID, issueType, description string) error {
	return s.gateway.ReportIssue(ctx, orderID, issueType, description)
}

// UrgentAlert renders the alert text for an urgent order pushed through
// the event pipeline.
func (s *OrderService) UrgentAlert(order entities.Order) string {
	return s.formatter.UrgentAlert(order)
}

func (s *OrderService) Health(ctx context.Context) bool {
	return s.gateway.HealthCheck(ctx)
}
