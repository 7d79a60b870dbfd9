package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the fulfillment state of an order. Transitions are monotonic
// (Pending -> Processing -> Shipped -> Delivered); this service never mutates them.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

// Order is an immutable reference record owned by the mock store.
type Order struct {
	ID               string
	Status           Status
	CreatedAt        time.Time
	ExpectedDelivery time.Time
	TotalAmount      decimal.Decimal
}

// ReturnRequest is an append-only record created by the return intent.
type ReturnRequest struct {
	ID        string
	OrderID   string
	Reason    string
	CreatedAt time.Time
}

// CanonicalID normalizes user-supplied order ids to the stored form:
// uppercase with trailing "?" and "." stripped.
func CanonicalID(id string) string {
	return strings.TrimRight(strings.ToUpper(strings.TrimSpace(id)), "?.")
}
