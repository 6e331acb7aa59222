package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
	"github.com/SergeyBogomolovv/food-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/food-order-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrder(ctx context.Context, f entities.OrderFilter) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	CountOrders(ctx context.Context, f entities.OrderFilter) (int, error)

	// guard: обновляем, только если текущий статус в списке
	UpdateOrder(ctx context.Context, uid string, upd entities.OrderUpdate, guard []entities.Status, now time.Time) (bool, error)

	// Атомарный upsert: quantity = quantity + EXCLUDED.quantity
	UpsertItems(ctx context.Context, orderID int64, items []entities.ItemInput, now time.Time) error
	ListItems(ctx context.Context, f entities.ChildFilter) ([]entities.Item, error)

	CreatePayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListPayments(ctx context.Context, f entities.ChildFilter) ([]entities.Payment, error)
	CountPayments(ctx context.Context, f entities.ChildFilter) (int, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// ExpiryScheduler планирует разовую проверку заказа на просрочку
type ExpiryScheduler interface {
	ScheduleStaleCheck(ctx context.Context, orderUID string, dueAt time.Time) error
}

// Отсечка строгая (created_at < cutoff), поэтому проверяем чуть позже
const staleCheckGrace = time.Second

type Options struct {
	AutoRejectAfter time.Duration
	Now             func() time.Time
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	expiry    ExpiryScheduler

	autoRejectAfter time.Duration
	now             func() time.Time
	retry           utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, expiry ExpiryScheduler, opts Options) *orderService {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &orderService{
		logger:          logger.With(slog.String("service", "order")),
		txManager:       txManager,
		repo:            repo,
		cache:           cache,
		expiry:          expiry,
		autoRejectAfter: opts.AutoRejectAfter,
		now:             opts.Now,
		retry: utils.RetryConfig{
			InitialDelay: 50 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
			Retryable:    trm.IsRetryable,
		},
	}
}

func (s *orderService) BuildOrder(customerID string) entities.Order {
	now := s.now()
	return entities.Order{
		UID:        uuid.NewString(),
		CustomerID: customerID,
		Status:     entities.StatusPlaced,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, customerID string) (entities.Order, error) {
	order, err := s.repo.CreateOrder(ctx, s.BuildOrder(customerID))
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *orderService) CreateItemsForOrder(ctx context.Context, order entities.Order, items []entities.ItemInput) ([]entities.Item, error) {
	// upsert прибавляет quantity, CHECK на вставке отрицательное значение не поймает
	if err := entities.ValidateItems(items); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertItems(ctx, order.ID, entities.MergeItems(items), s.now()); err != nil {
		return nil, fmt.Errorf("failed to save items: %w", err)
	}
	result, err := s.repo.ListItems(ctx, entities.ChildFilter{}.ForOrders(order.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return result, nil
}

func (s *orderService) CreatePaymentForOrder(ctx context.Context, order entities.Order, paymentInfoID string) (entities.Payment, error) {
	now := s.now()
	payment, err := s.repo.CreatePayment(ctx, entities.Payment{
		OrderID:       order.ID,
		OrderUID:      order.UID,
		PaymentInfoID: paymentInfoID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to save payment: %w", err)
	}
	return payment, nil
}

// UpdateOrder возвращает true, если изменилось хотя бы одно поле
func (s *orderService) UpdateOrder(ctx context.Context, order *entities.Order, upd entities.OrderUpdate) (bool, error) {
	now := s.now()
	updated := *order
	changed := updated.Apply(upd, now)

	found, err := s.repo.UpdateOrder(ctx, order.UID, upd, nil, now)
	if err != nil {
		return false, fmt.Errorf("failed to update order: %w", err)
	}
	if !found {
		return false, entities.ErrOrderNotFound
	}

	*order = updated
	return changed, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, customerID string, items []entities.ItemInput, paymentInfoID string) (entities.Order, error) {
	if err := entities.ValidateOrderInput(customerID, items, paymentInfoID); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.inTx(ctx, func(ctx context.Context) error {
		created, err := s.CreateOrder(ctx, customerID)
		if err != nil {
			return err
		}
		if _, err := s.CreateItemsForOrder(ctx, created, items); err != nil {
			return err
		}
		if _, err := s.CreatePaymentForOrder(ctx, created, paymentInfoID); err != nil {
			return err
		}

		order, err = s.repo.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(created.UID))
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order placed", slog.String("order_uid", order.UID), slog.String("customer_id", customerID))

	// Периодическая задача всё равно подберёт заказ, поэтому ошибку только логируем
	dueAt := order.CreatedAt.Add(s.autoRejectAfter + staleCheckGrace)
	if err := s.expiry.ScheduleStaleCheck(ctx, order.UID, dueAt); err != nil {
		s.logger.Error("failed to schedule stale check", slog.String("order_uid", order.UID), slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) AddItems(ctx context.Context, customerID, orderUID string, items []entities.ItemInput, paymentInfoID string) (entities.Order, error) {
	if !validUID(orderUID) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err := entities.ValidateOrderInput(customerID, items, paymentInfoID); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.inTx(ctx, func(ctx context.Context) error {
		// строка заказа заблокирована до коммита, accept/reject подождут
		locked, err := s.repo.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(orderUID).Unoptimized().Locked())
		if err != nil {
			return err
		}
		if locked.CustomerID != customerID {
			return entities.ErrWrongCustomer
		}
		if locked.IsFinalised() {
			return entities.ErrOrderNotPlaced
		}

		if _, err := s.CreateItemsForOrder(ctx, locked, items); err != nil {
			return err
		}
		if _, err := s.CreatePaymentForOrder(ctx, locked, paymentInfoID); err != nil {
			return err
		}

		order, err = s.repo.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(orderUID))
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ApplyAction(ctx context.Context, orderUID string, action entities.Action) (entities.Order, error) {
	if entities.SourceStates(action) == nil {
		return entities.Order{}, &entities.ValidationError{
			Code:   entities.CodeInvalidChoice,
			Detail: fmt.Sprintf("%q is not a valid choice.", action),
			Attr:   "action",
		}
	}
	if !validUID(orderUID) {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	order, err := s.repo.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(orderUID).Unoptimized())
	if err != nil {
		return entities.Order{}, err
	}
	if order.IsFinalised() {
		return entities.Order{}, entities.ErrAlreadyFinalised
	}

	err = s.transition(ctx, &order, action)
	// Проиграли гонку со сборщиком или другим запросом
	if errors.Is(err, entities.ErrInvalidTransition) {
		return entities.Order{}, entities.ErrAlreadyFinalised
	}
	if err != nil {
		return entities.Order{}, err
	}

	return s.repo.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(orderUID))
}

func (s *orderService) MarkAsAccepted(ctx context.Context, order *entities.Order) error {
	return s.transition(ctx, order, entities.ActionAccept)
}

func (s *orderService) MarkAsRejected(ctx context.Context, order *entities.Order) error {
	return s.transition(ctx, order, entities.ActionReject)
}

// Статус и отметка времени пишутся одним условным UPDATE
func (s *orderService) transition(ctx context.Context, order *entities.Order, action entities.Action) error {
	now := s.now()
	upd, err := entities.Transition(*order, action, now)
	if err != nil {
		return err
	}

	ok, err := s.repo.UpdateOrder(ctx, order.UID, upd, entities.SourceStates(action), now)
	if err != nil {
		return fmt.Errorf("failed to %s order: %w", action, err)
	}
	if !ok {
		return fmt.Errorf("%w: order %s was finalised concurrently", entities.ErrInvalidTransition, order.UID)
	}

	order.Apply(upd, now)
	s.cache.Set(order.UID, []byte(order.Status))
	return nil
}

// false значит "неизвестно", а не "placed"
func (s *orderService) KnownFinalised(orderUID string) bool {
	_, ok := s.cache.Get(orderUID)
	return ok
}

func (s *orderService) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, int, error) {
	count, err := s.repo.CountOrders(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return []entities.Order{}, 0, nil
	}
	orders, err := s.repo.ListOrders(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

func (s *orderService) ListRefunds(ctx context.Context, limit, offset uint64) ([]entities.Payment, int, error) {
	f := entities.ChildFilter{}.Rejected()

	count, err := s.repo.CountPayments(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return []entities.Payment{}, 0, nil
	}
	payments, err := s.repo.ListPayments(ctx, f.Page(limit, offset))
	if err != nil {
		return nil, 0, err
	}
	return payments, count, nil
}

func (s *orderService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return utils.Retry(ctx, s.retry, func() error {
		return s.txManager.Do(ctx, fn)
	})
}

func validUID(uid string) bool {
	_, err := uuid.Parse(uid)
	return err == nil
}
