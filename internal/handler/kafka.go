package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fleetline/driver-assist/internal/config"
	"github.com/fleetline/driver-assist/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// AlertRenderer renders the urgent-order alert text.
type AlertRenderer interface {
	UrgentAlert(order entities.Order) string
}

// kafkaHandler consumes order events from the backend and turns urgent
// ones into driver alerts. Events it cannot handle go to a DLQ topic.
type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	renderer AlertRenderer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Events, renderer AlertRenderer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		renderer: renderer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleOrderEvent(ctx, m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle order event", slog.Any("error", err))

			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write event to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderEvent(ctx context.Context, m kafka.Message) error {
	var order Order
	if err := json.Unmarshal(m.Value, &order); err != nil {
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	if err := h.validate.Struct(order); err != nil {
		return fmt.Errorf("invalid order event: %w", err)
	}

	entity := OrderJSONToEntity(order)
	if entity.Priority != entities.PriorityUrgent || entity.Status == entities.StatusDelivered {
		return nil
	}

	alert := h.renderer.UrgentAlert(entity)
	urgentAlerts.Inc()

	// Delivery to the chat network happens downstream; here the rendered
	// alert is only handed to the log relay.
	h.logger.InfoContext(ctx, "urgent order alert",
		slog.String("order_id", entity.ID),
		slog.String("driver_id", entity.DriverID),
		slog.String("alert", alert),
	)
	return nil
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
