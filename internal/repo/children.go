package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// UpsertItems inserts new item lines and adds the quantity of lines that
// already exist for the order in one statement. Item ids must be unique
// within items: postgres refuses to update the same row twice per statement.
func (r *postgresRepo) UpsertItems(ctx context.Context, orderID int64, items []entities.ItemInput, now time.Time) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("uid", "order_id", "item_id", "quantity", "created_at", "updated_at").
		Suffix("ON CONFLICT (order_id, item_id) DO UPDATE SET " +
			"quantity = order_items.quantity + EXCLUDED.quantity, " +
			"updated_at = EXCLUDED.updated_at")

	for _, it := range items {
		q = q.Values(uuid.NewString(), orderID, it.ItemID, it.Quantity, now, now)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert items: %w", translateError(err))
	}
	return nil
}

func (r *postgresRepo) ListItems(ctx context.Context, f entities.ChildFilter) ([]entities.Item, error) {
	rows, err := r.selectItems(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Item, 0, len(rows))
	for _, it := range rows {
		items = append(items, ItemToEntity(it))
	}
	return items, nil
}

func (r *postgresRepo) CreatePayment(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if p.UID == "" {
		p.UID = uuid.NewString()
	}

	query, args := r.qb.Insert("order_payments").
		Columns("uid", "order_id", "payment_info_id", "created_at", "updated_at").
		Values(p.UID, p.OrderID, p.PaymentInfoID, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &p.ID, query, args...); err != nil {
		return entities.Payment{}, fmt.Errorf("failed to insert payment: %w", translateError(err))
	}
	return p, nil
}

func (r *postgresRepo) ListPayments(ctx context.Context, f entities.ChildFilter) ([]entities.Payment, error) {
	rows, err := r.selectPayments(ctx, f)
	if err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(rows))
	for _, p := range rows {
		payments = append(payments, PaymentToEntity(p))
	}
	return payments, nil
}

func (r *postgresRepo) CountPayments(ctx context.Context, f entities.ChildFilter) (int, error) {
	query, args := applyChildFilter(r.qb.Select("COUNT(*)").From("order_payments p"), "p", f).MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) selectItems(ctx context.Context, f entities.ChildFilter) ([]Item, error) {
	q := childSelect(r.qb, "order_items", "i", itemColumns, f).
		OrderBy("i.created_at ASC", "i.id ASC")
	q = paginate(q, f)
	query, args := q.MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return items, nil
}

func (r *postgresRepo) selectPayments(ctx context.Context, f entities.ChildFilter) ([]Payment, error) {
	q := childSelect(r.qb, "order_payments", "p", paymentColumns, f).
		OrderBy("p.created_at DESC", "p.id DESC")
	q = paginate(q, f)
	query, args := q.MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	return payments, nil
}

func childSelect(qb sq.StatementBuilderType, table, alias string, columns []string, f entities.ChildFilter) sq.SelectBuilder {
	cols := append([]string(nil), columns...)
	var q sq.SelectBuilder
	if f.SkipRelated {
		q = qb.Select(cols...).From(table + " " + alias)
	} else {
		cols = append(cols, "o.uid AS order_uid")
		q = qb.Select(cols...).
			From(table + " " + alias).
			Join("orders o ON o.id = " + alias + ".order_id")
	}
	return applyChildFilter(q, alias, f)
}

// applyChildFilter resolves order state through a subquery on orders so the
// result always reflects the current order status.
func applyChildFilter(q sq.SelectBuilder, alias string, f entities.ChildFilter) sq.SelectBuilder {
	col := alias + ".order_id"
	if len(f.OrderIDs) > 0 {
		q = q.Where(sq.Eq{col: f.OrderIDs})
	}
	for _, s := range f.OrderStates {
		switch s {
		case entities.OrderStateAccepted:
			q = q.Where(col + " IN (SELECT id FROM orders WHERE accepted_at IS NOT NULL)")
		case entities.OrderStateNotAccepted:
			q = q.Where(col + " NOT IN (SELECT id FROM orders WHERE accepted_at IS NOT NULL)")
		case entities.OrderStateRejected:
			q = q.Where(col + " IN (SELECT id FROM orders WHERE rejected_at IS NOT NULL)")
		case entities.OrderStateNotRejected:
			q = q.Where(col + " NOT IN (SELECT id FROM orders WHERE rejected_at IS NOT NULL)")
		}
	}
	return q
}

func paginate(q sq.SelectBuilder, f entities.ChildFilter) sq.SelectBuilder {
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return q
}
