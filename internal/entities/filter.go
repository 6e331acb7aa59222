package entities

import "time"

type OrderScope int

const (
	ScopeActionable OrderScope = iota + 1
	ScopeAccepted
	ScopeNotAccepted
	ScopeRejected
	ScopeNotRejected
	ScopeStale
)

// OrderFilter describes an order query. Related rows are loaded by default.
type OrderFilter struct {
	Scopes      []OrderScope
	StaleAt     time.Time
	Status      string
	CustomerID  string
	UIDs        []string
	Limit       uint64
	Offset      uint64
	ForUpdate   bool
	SkipRelated bool
}

func (f OrderFilter) with(s OrderScope) OrderFilter {
	f.Scopes = append(append([]OrderScope(nil), f.Scopes...), s)
	return f
}

func (f OrderFilter) Actionable() OrderFilter  { return f.with(ScopeActionable) }
func (f OrderFilter) Accepted() OrderFilter    { return f.with(ScopeAccepted) }
func (f OrderFilter) NotAccepted() OrderFilter { return f.with(ScopeNotAccepted) }
func (f OrderFilter) Rejected() OrderFilter    { return f.with(ScopeRejected) }
func (f OrderFilter) NotRejected() OrderFilter { return f.with(ScopeNotRejected) }

// Stale selects placed orders created before cutoff.
func (f OrderFilter) Stale(cutoff time.Time) OrderFilter {
	f.StaleAt = cutoff
	return f.with(ScopeStale)
}

// WithStatus matches the status column case-insensitively. Unknown values match nothing.
func (f OrderFilter) WithStatus(status string) OrderFilter {
	f.Status = status
	return f
}

func (f OrderFilter) ForCustomer(customerID string) OrderFilter {
	f.CustomerID = customerID
	return f
}

func (f OrderFilter) WithUIDs(uids ...string) OrderFilter {
	f.UIDs = append(append([]string(nil), f.UIDs...), uids...)
	return f
}

func (f OrderFilter) Page(limit, offset uint64) OrderFilter {
	f.Limit, f.Offset = limit, offset
	return f
}

// Locked selects rows with FOR UPDATE; only meaningful inside a transaction.
func (f OrderFilter) Locked() OrderFilter {
	f.ForUpdate = true
	return f
}

// Unoptimized skips loading items and payments, for write-heavy paths.
func (f OrderFilter) Unoptimized() OrderFilter {
	f.SkipRelated = true
	return f
}

type OrderState int

const (
	OrderStateAccepted OrderState = iota + 1
	OrderStateNotAccepted
	OrderStateRejected
	OrderStateNotRejected
)

// ChildFilter selects items or payments by the state of the owning order.
type ChildFilter struct {
	OrderIDs    []int64
	OrderStates []OrderState
	Limit       uint64
	Offset      uint64
	SkipRelated bool
}

func (f ChildFilter) with(s OrderState) ChildFilter {
	f.OrderStates = append(append([]OrderState(nil), f.OrderStates...), s)
	return f
}

func (f ChildFilter) ForOrders(ids ...int64) ChildFilter {
	f.OrderIDs = append(append([]int64(nil), f.OrderIDs...), ids...)
	return f
}

func (f ChildFilter) Accepted() ChildFilter    { return f.with(OrderStateAccepted) }
func (f ChildFilter) NotAccepted() ChildFilter { return f.with(OrderStateNotAccepted) }
func (f ChildFilter) Rejected() ChildFilter    { return f.with(OrderStateRejected) }
func (f ChildFilter) NotRejected() ChildFilter { return f.with(OrderStateNotRejected) }

func (f ChildFilter) Page(limit, offset uint64) ChildFilter {
	f.Limit, f.Offset = limit, offset
	return f
}

// Unoptimized skips resolving the owning order uid.
func (f ChildFilter) Unoptimized() ChildFilter {
	f.SkipRelated = true
	return f
}
