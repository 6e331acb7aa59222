package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
)

type Order struct {
	ID         int64        `db:"id"`
	UID        string       `db:"uid"`
	CustomerID string       `db:"customer_id"`
	Status     string       `db:"status"`
	AcceptedAt sql.NullTime `db:"accepted_at"`
	RejectedAt sql.NullTime `db:"rejected_at"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}

type Item struct {
	ID        int64          `db:"id"`
	UID       string         `db:"uid"`
	OrderID   int64          `db:"order_id"`
	OrderUID  sql.NullString `db:"order_uid"`
	ItemID    string         `db:"item_id"`
	Quantity  int            `db:"quantity"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type Payment struct {
	ID            int64          `db:"id"`
	UID           string         `db:"uid"`
	OrderID       int64          `db:"order_id"`
	OrderUID      sql.NullString `db:"order_uid"`
	PaymentInfoID string         `db:"payment_info_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

var (
	orderColumns = []string{
		"id", "uid", "customer_id", "status",
		"accepted_at", "rejected_at", "created_at", "updated_at",
	}
	itemColumns = []string{
		"i.id", "i.uid", "i.order_id", "i.item_id", "i.quantity", "i.created_at", "i.updated_at",
	}
	paymentColumns = []string{
		"p.id", "p.uid", "p.order_id", "p.payment_info_id", "p.created_at", "p.updated_at",
	}
)

func OrderToEntity(o Order, items []Item, payments []Payment) entities.Order {
	order := entities.Order{
		ID:         o.ID,
		UID:        o.UID,
		CustomerID: o.CustomerID,
		Status:     entities.Status(o.Status),
		AcceptedAt: nullTimeToPtr(o.AcceptedAt),
		RejectedAt: nullTimeToPtr(o.RejectedAt),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			item := ItemToEntity(it)
			item.OrderUID = o.UID
			order.Items = append(order.Items, item)
		}
	}

	if len(payments) > 0 {
		order.Payments = make([]entities.Payment, 0, len(payments))
		for _, p := range payments {
			payment := PaymentToEntity(p)
			payment.OrderUID = o.UID
			order.Payments = append(order.Payments, payment)
		}
	}

	return order
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ID:        i.ID,
		UID:       i.UID,
		OrderID:   i.OrderID,
		OrderUID:  nullStringToString(i.OrderUID),
		ItemID:    i.ItemID,
		Quantity:  i.Quantity,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ID:            p.ID,
		UID:           p.UID,
		OrderID:       p.OrderID,
		OrderUID:      nullStringToString(p.OrderUID),
		PaymentInfoID: p.PaymentInfoID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
