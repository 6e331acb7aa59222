package entities

import (
	"fmt"
	"slices"
	"time"
)

type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

type transition struct {
	target Status
	stamp  func(u *OrderUpdate, at time.Time)
}

var (
	AcceptedSourceStates = []Status{StatusPlaced}
	RejectedSourceStates = []Status{StatusPlaced}
)

// transitions is keyed by (current status, action). Missing pairs are illegal.
var transitions = map[Status]map[Action]transition{
	StatusPlaced: {
		ActionAccept: {target: StatusAccepted, stamp: func(u *OrderUpdate, at time.Time) { u.AcceptedAt = &at }},
		ActionReject: {target: StatusRejected, stamp: func(u *OrderUpdate, at time.Time) { u.RejectedAt = &at }},
	},
}

// SourceStates returns the statuses an action may be applied from.
func SourceStates(a Action) []Status {
	switch a {
	case ActionAccept:
		return AcceptedSourceStates
	case ActionReject:
		return RejectedSourceStates
	}
	return nil
}

func (o Order) Can(a Action) bool {
	if !slices.Contains(SourceStates(a), o.Status) {
		return false
	}
	_, ok := transitions[o.Status][a]
	return ok
}

func (o Order) CanMarkAsAccepted() bool { return o.Can(ActionAccept) }

func (o Order) CanMarkAsRejected() bool { return o.Can(ActionReject) }

// Transition returns ErrInvalidTransition for pairs missing from the table.
func Transition(o Order, a Action, at time.Time) (OrderUpdate, error) {
	if !o.Can(a) {
		return OrderUpdate{}, fmt.Errorf("%w: cannot %s order in status %q", ErrInvalidTransition, a, o.Status)
	}
	t := transitions[o.Status][a]
	target := t.target
	upd := OrderUpdate{Status: &target}
	t.stamp(&upd, at)
	return upd, nil
}

// OrderUpdate is a partial update; nil fields are left untouched.
type OrderUpdate struct {
	CustomerID *string
	Status     *Status
	AcceptedAt *time.Time
	RejectedAt *time.Time
}

func (u OrderUpdate) Empty() bool {
	return u.CustomerID == nil && u.Status == nil && u.AcceptedAt == nil && u.RejectedAt == nil
}

// Apply reports whether any field changed.
func (o *Order) Apply(u OrderUpdate, now time.Time) bool {
	changed := false
	if u.CustomerID != nil && *u.CustomerID != o.CustomerID {
		o.CustomerID = *u.CustomerID
		changed = true
	}
	if u.Status != nil && *u.Status != o.Status {
		o.Status = *u.Status
		changed = true
	}
	if u.AcceptedAt != nil && !timeEqual(o.AcceptedAt, u.AcceptedAt) {
		at := *u.AcceptedAt
		o.AcceptedAt = &at
		changed = true
	}
	if u.RejectedAt != nil && !timeEqual(o.RejectedAt, u.RejectedAt) {
		at := *u.RejectedAt
		o.RejectedAt = &at
		changed = true
	}
	o.UpdatedAt = now
	return changed
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
