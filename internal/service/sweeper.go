package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
)

// HandleStaleOrders отклоняет просроченные заказы и возвращает их количество.
// Ошибка по одному заказу не останавливает остальные.
func (s *orderService) HandleStaleOrders(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.autoRejectAfter)

	orders, err := s.repo.ListOrders(ctx, entities.OrderFilter{}.Stale(cutoff).Unoptimized())
	if err != nil {
		return 0, fmt.Errorf("failed to list stale orders: %w", err)
	}

	rejected := 0
	for i := range orders {
		if err := ctx.Err(); err != nil {
			return rejected, err
		}

		order := &orders[i]
		err := s.MarkAsRejected(ctx, order)
		switch {
		case err == nil:
			rejected++
			staleOrdersRejected.Inc()
		case errors.Is(err, entities.ErrInvalidTransition):
			staleOrderRaces.Inc()
			s.logger.Debug("stale order finalised concurrently", slog.String("order_uid", order.UID))
		default:
			staleOrderFailures.Inc()
			s.logger.Error("failed to reject stale order", slog.String("order_uid", order.UID), slog.Any("error", err))
		}
	}

	if rejected > 0 {
		s.logger.Info("stale orders rejected", slog.Int("count", rejected), slog.Time("cutoff", cutoff))
	}
	return rejected, nil
}
