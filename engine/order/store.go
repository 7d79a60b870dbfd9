package order

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Store is the in-memory mock order and return-request store. Reads and the
// single append path are mutex-guarded so the store stays safe behind a
// concurrent HTTP server.
type Store struct {
	mu      sync.RWMutex
	orders  map[string]Order
	returns []ReturnRequest
	now     func() time.Time
}

// NewStore seeds the demo orders relative to the supplied clock. A nil clock
// defaults to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		orders: make(map[string]Order),
		now:    now,
	}
	base := now()
	s.seed(Order{
		ID:               "ORD123",
		Status:           StatusProcessing,
		CreatedAt:        base.AddDate(0, 0, -2),
		ExpectedDelivery: base.AddDate(0, 0, 4),
		TotalAmount:      decimal.NewFromFloat(1499.00),
	})
	s.seed(Order{
		ID:               "ORD456",
		Status:           StatusShipped,
		CreatedAt:        base.AddDate(0, 0, -3),
		ExpectedDelivery: base.AddDate(0, 0, 2),
		TotalAmount:      decimal.NewFromFloat(899.00),
	})
	s.seed(Order{
		ID:               "ORD789",
		Status:           StatusDelivered,
		CreatedAt:        base.AddDate(0, 0, -7),
		ExpectedDelivery: base.AddDate(0, 0, -2),
		TotalAmount:      decimal.NewFromFloat(2499.00),
	})
	return s
}

func (s *Store) seed(o Order) {
	s.orders[o.ID] = o
}

// Lookup resolves an order by its canonical id.
func (s *Store) Lookup(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[CanonicalID(id)]
	return o, ok
}

// AppendReturn records a return request. Appends are not deduplicated:
// requesting the same return twice stores two records.
func (s *Store) AppendReturn(req ReturnRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returns = append(s.returns, req)
}

// Returns snapshots the recorded return requests.
func (s *Store) Returns() []ReturnRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReturnRequest, len(s.returns))
	copy(out, s.returns)
	return out
}
