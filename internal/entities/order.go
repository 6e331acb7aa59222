package entities

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusPlaced   Status = "placed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlaced, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// ParseStatus matches status names case-insensitively.
func ParseStatus(s string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	return status, status.Valid()
}

type Order struct {
	ID         int64
	UID        string
	CustomerID string
	Status     Status
	AcceptedAt *time.Time
	RejectedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// only set when loaded with related rows
	Items    []Item
	Payments []Payment
}

// IsFinalised reports whether the restaurant (or the sweeper) has acted on the order.
func (o Order) IsFinalised() bool {
	return o.AcceptedAt != nil || o.RejectedAt != nil
}

type Item struct {
	ID        int64
	UID       string
	OrderID   int64
	OrderUID  string
	ItemID    string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Payment struct {
	ID            int64
	UID           string
	OrderID       int64
	OrderUID      string
	PaymentInfoID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ItemInput is a requested item line before it is merged into an order.
type ItemInput struct {
	ItemID   string
	Quantity int
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrDuplicate         = errors.New("object is a duplicate of existing data")
)
