package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/config"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// ExpiryMessage asks for a stale order check once dueAt has passed.
type ExpiryMessage struct {
	OrderID string    `json:"orderId" validate:"required"`
	DueAt   time.Time `json:"dueAt" validate:"required"`
}

type StaleOrderHandler interface {
	HandleStaleOrders(ctx context.Context) (int, error)
	KnownFinalised(orderUID string) bool
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher puts expiry messages on the delay topic.
type kafkaPublisher struct {
	writer messageWriter
}

func NewKafkaExpiryPublisher(cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.ExpiryTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *kafkaPublisher) ScheduleStaleCheck(ctx context.Context, orderUID string, dueAt time.Time) error {
	value, err := json.Marshal(ExpiryMessage{OrderID: orderUID, DueAt: dueAt})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry message: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(orderUID), Value: value}); err != nil {
		expiryMessagesPublished.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to publish expiry message: %w", err)
	}
	expiryMessagesPublished.WithLabelValues("ok").Inc()
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// kafkaHandler consumes the delay topic. Every message carries the same
// delay, so messages arrive ordered by due time and the consumer only has
// to wait for the head of the partition.
type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	handler  StaleOrderHandler
	now      func() time.Time
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, handler StaleOrderHandler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.ExpiryTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: validator.New(),
		handler:  handler,
		now:      time.Now,
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

		if err := h.handleExpiry(ctx, m); err != nil {
			// Не коммитим: после перезапуска сообщение придёт снова
			if ctx.Err() != nil {
				break
			}

			expiryMessagesFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			expiryMessagesDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleExpiry(ctx context.Context, m kafka.Message) error {
	var msg ExpiryMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal expiry message: %w", err)
	}
	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid expiry message: %w", err)
	}

	if err := h.waitUntil(ctx, msg.DueAt); err != nil {
		return err
	}

	if h.handler.KnownFinalised(msg.OrderID) {
		expiryMessagesSkipped.Inc()
		h.logger.Debug("order already finalised", slog.String("order_uid", msg.OrderID))
		return nil
	}

	n, err := h.handler.HandleStaleOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to handle stale orders: %w", err)
	}

	expiryMessagesProcessed.Inc()
	h.logger.Debug("expiry message processed", slog.String("order_uid", msg.OrderID), slog.Int("rejected", n))
	return nil
}

func (h *kafkaHandler) waitUntil(ctx context.Context, at time.Time) error {
	d := at.Sub(h.now())
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
