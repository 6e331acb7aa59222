package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
	"github.com/SergeyBogomolovv/food-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("uid", "customer_id", "status", "accepted_at", "rejected_at", "created_at", "updated_at").
		Values(o.UID, o.CustomerID, string(o.Status), nullTime(o.AcceptedAt), nullTime(o.RejectedAt), o.CreatedAt, o.UpdatedAt).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &o.ID, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", translateError(err))
	}
	return o, nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, f entities.OrderFilter) (entities.Order, error) {
	orders, err := r.ListOrders(ctx, f.Page(1, 0))
	if err != nil {
		return entities.Order{}, err
	}
	if len(orders) == 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return orders[0], nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := applyOrderFilter(r.qb.Select(orderColumns...).From("orders"), f).
		OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.ForUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	itemsMap := make(map[int64][]Item, len(orders))
	paymentsMap := make(map[int64][]Payment, len(orders))

	// Подгружаем связанные строки двумя запросами вместо N+1
	if !f.SkipRelated {
		ids := make([]int64, len(orders))
		for i, o := range orders {
			ids[i] = o.ID
		}

		items, err := r.selectItems(ctx, entities.ChildFilter{}.ForOrders(ids...).Unoptimized())
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
		}

		payments, err := r.selectPayments(ctx, entities.ChildFilter{}.ForOrders(ids...).Unoptimized())
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			paymentsMap[p.OrderID] = append(paymentsMap[p.OrderID], p)
		}
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID], paymentsMap[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context, f entities.OrderFilter) (int, error) {
	query, args := applyOrderFilter(r.qb.Select("COUNT(*)").From("orders"), f).MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// UpdateOrder applies upd to the order with the given uid. When guard is not
// empty the row is only touched if its current status is in guard, which makes
// the status check and the write a single atomic statement. Reports whether a
// row matched.
func (r *postgresRepo) UpdateOrder(ctx context.Context, uid string, upd entities.OrderUpdate, guard []entities.Status, now time.Time) (bool, error) {
	q := r.qb.Update("orders").
		Set("updated_at", now).
		Where(sq.Eq{"uid": uid})

	if upd.CustomerID != nil {
		q = q.Set("customer_id", *upd.CustomerID)
	}
	if upd.Status != nil {
		q = q.Set("status", string(*upd.Status))
	}
	if upd.AcceptedAt != nil {
		q = q.Set("accepted_at", *upd.AcceptedAt)
	}
	if upd.RejectedAt != nil {
		q = q.Set("rejected_at", *upd.RejectedAt)
	}
	if len(guard) > 0 {
		q = q.Where(sq.Eq{"status": statusStrings(guard)})
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order: %w", translateError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

func applyOrderFilter(q sq.SelectBuilder, f entities.OrderFilter) sq.SelectBuilder {
	for _, s := range f.Scopes {
		switch s {
		case entities.ScopeActionable:
			q = q.Where(sq.NotEq{"status": statusStrings([]entities.Status{entities.StatusAccepted, entities.StatusRejected})})
		case entities.ScopeAccepted:
			q = q.Where(sq.NotEq{"accepted_at": nil})
		case entities.ScopeNotAccepted:
			q = q.Where(sq.Eq{"accepted_at": nil})
		case entities.ScopeRejected:
			q = q.Where(sq.NotEq{"rejected_at": nil})
		case entities.ScopeNotRejected:
			q = q.Where(sq.Eq{"rejected_at": nil})
		case entities.ScopeStale:
			q = q.Where(sq.Eq{"status": string(entities.StatusPlaced)}).
				Where(sq.Lt{"created_at": f.StaleAt})
		}
	}
	if f.Status != "" {
		q = q.Where(sq.Expr("LOWER(status) = LOWER(?)", f.Status))
	}
	if f.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": f.CustomerID})
	}
	if len(f.UIDs) > 0 {
		q = q.Where(sq.Eq{"uid": f.UIDs})
	}
	return q
}

func statusStrings(statuses []entities.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

func translateError(err error) error {
	switch {
	case trm.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", entities.ErrDuplicate, err)
	case trm.IsStringTooLong(err):
		return fmt.Errorf("%w: %w", entities.ErrValueTooLong, err)
	case trm.IsNumericOutOfRange(err):
		// единственная числовая колонка, которую мы пишем, это quantity
		return fmt.Errorf("%w: %w", entities.ErrQuantityTooLarge, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrOrderNotFound
	}
	return err
}
