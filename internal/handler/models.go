package handler

import (
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
)

// MenuItem позиция меню в запросе и в ответе
type MenuItem struct {
	ItemID   string `json:"itemId" validate:"required,max=255" example:"margherita"`
	Quantity *int   `json:"quantity" validate:"required" example:"2"`
}

// OrderRequest тело запроса на создание заказа и на дозаказ
type OrderRequest struct {
	MenuItems     []MenuItem `json:"menuItems" validate:"required,dive"`
	PaymentInfoID string     `json:"paymentInfoId" validate:"required,max=255" example:"pi_3MtwBwLkdIwHu7ix"`
}

func (r OrderRequest) Items() []entities.ItemInput {
	items := make([]entities.ItemInput, 0, len(r.MenuItems))
	for _, it := range r.MenuItems {
		items = append(items, entities.ItemInput{ItemID: it.ItemID, Quantity: *it.Quantity})
	}
	return items
}

// ActionRequest действие ресторана над заказом
type ActionRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject" enums:"accept,reject" example:"accept"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ItemID   string `json:"itemId" example:"margherita"`
	Quantity int    `json:"quantity" example:"2"`
}

// Order представляет заказ
type Order struct {
	OrderID    string      `json:"orderId" example:"0b6f1e7a-3c1d-4e1b-9a4f-6f1f4b7e2d10"`
	CustomerID string      `json:"customerId" example:"customer-42"`
	OrderedAt  time.Time   `json:"orderedAt"`
	MenuItems  []OrderItem `json:"menuItems"`
	Status     string      `json:"status" enums:"placed,accepted,rejected" example:"placed"`
	AcceptedAt *time.Time  `json:"acceptedAt,omitempty"`
	RejectedAt *time.Time  `json:"rejectedAt,omitempty"`
}

// Refund платёж отклонённого заказа
type Refund struct {
	OrderID       string `json:"orderId"`
	PaymentInfoID string `json:"paymentInfoId"`
}

// Page страница списка
type Page[T any] struct {
	Count    int     `json:"count" example:"42"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// OrderPage страница заказов (для документации)
type OrderPage = Page[Order]

// RefundPage страница возвратов (для документации)
type RefundPage = Page[Refund]

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	return Order{
		OrderID:    o.UID,
		CustomerID: o.CustomerID,
		OrderedAt:  o.CreatedAt,
		MenuItems:  items,
		Status:     string(o.Status),
		AcceptedAt: o.AcceptedAt,
		RejectedAt: o.RejectedAt,
	}
}

func RefundEntityToJSON(p entities.Payment) Refund {
	return Refund{OrderID: p.OrderUID, PaymentInfoID: p.PaymentInfoID}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
