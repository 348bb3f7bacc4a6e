package entities

import (
	"strings"
	"time"
)

// OrderStatus represents the lifecycle of a customer order.
//
// Lifecycle:
//
//	pending -> confirmed -> preparing -> ready -> completed
//
// cancelled is reachable from every non-terminal state. completed and cancelled
// are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ParseOrderStatus reads a stored status value. Stored values are matched
// exactly; unknown ones (including other casings) fall back to pending so that
// legacy or half-written documents stay renderable. Writes go through
// NormalizeOrderStatus, so the two never disagree about "completed".
func ParseOrderStatus(raw string) OrderStatus {
	s := OrderStatus(strings.TrimSpace(raw))
	if s.IsKnown() {
		return s
	}
	return OrderStatusPending
}

// NormalizeOrderStatus is the canonical form a status is written in.
func NormalizeOrderStatus(raw string) OrderStatus {
	return OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
}

func (s OrderStatus) IsKnown() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is one line of an order. LineTotal is computed when the order is
// placed and stored as-is.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
	LineTotal float64 `json:"total"`
}

// Order is a customer purchase persisted in the orders table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (shopId-createdAt-index): shopId, createdAt
//
// Invariant: CompletedAt != nil iff Status == completed, except for cancelled
// orders which are also stamped on cancellation.
type Order struct {
	ID            string
	ShopID        string
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	Items         []OrderItem
	TotalAmount   float64
	Quantity      int
	Status        OrderStatus
	CreatedAt     time.Time
	CompletedAt   *time.Time
	Notes         string
	CancelReason  string
	DeliveryType  string
	Address       string
}

func (o Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// OrderChange is a single write to an order document as observed by the
// datastore trigger. Before is nil for inserts, After is nil for deletes.
type OrderChange struct {
	Before *Order
	After  *Order
}

// ShopID returns the shop the change belongs to, preferring the post-write image.
func (c OrderChange) ShopID() string {
	if c.After != nil && c.After.ShopID != "" {
		return c.After.ShopID
	}
	if c.Before != nil {
		return c.Before.ShopID
	}
	return ""
}

func (c OrderChange) IsInsert() bool {
	return c.Before == nil && c.After != nil
}
