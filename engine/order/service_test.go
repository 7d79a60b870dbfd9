package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	base := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return base }
}

func TestOrderStatus(t *testing.T) {
	now := fixedClock()
	svc := NewService(NewStore(now), now)

	t.Run("Should describe a processing order with id, dates and status", func(t *testing.T) {
		got := svc.OrderStatus("ORD123")
		assert.Contains(t, got, "ORD123")
		assert.Contains(t, got, "Processing")
		assert.Contains(t, got, "13 Mar 2025")
		assert.Contains(t, got, "19 Mar 2025")
		assert.Contains(t, got, "prepared for shipment")
	})

	t.Run("Should normalize lowercase ids and trailing punctuation", func(t *testing.T) {
		got := svc.OrderStatus("ord456?")
		assert.Contains(t, got, "ORD456")
		assert.Contains(t, got, "Shipped")
	})

	t.Run("Should answer unknown ids with the not-found message", func(t *testing.T) {
		got := svc.OrderStatus("ORD999")
		assert.Contains(t, got, "could not find any order with ID ORD999")
	})
}

func TestCreateReturn(t *testing.T) {
	t.Run("Should confirm an eligible return with the deterministic request id", func(t *testing.T) {
		now := fixedClock()
		store := NewStore(now)
		svc := NewService(store, now)
		got := svc.CreateReturn("ORD789", "damaged")
		assert.Contains(t, got, "RET-ORD789")
		assert.Contains(t, got, "damaged")
		require.Len(t, store.Returns(), 1)
		assert.Equal(t, "ORD789", store.Returns()[0].OrderID)
	})

	t.Run("Should append two records when requested twice", func(t *testing.T) {
		now := fixedClock()
		store := NewStore(now)
		svc := NewService(store, now)
		svc.CreateReturn("ORD789", "damaged")
		svc.CreateReturn("ORD789", "damaged")
		assert.Len(t, store.Returns(), 2)
	})

	t.Run("Should reject returns for orders that are not delivered", func(t *testing.T) {
		now := fixedClock()
		svc := NewService(NewStore(now), now)
		got := svc.CreateReturn("ORD123", "changed my mind")
		assert.Contains(t, got, "not currently eligible")
	})

	t.Run("Should reject returns outside the ten day window", func(t *testing.T) {
		base := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
		seedClock := func() time.Time { return base }
		store := NewStore(seedClock)
		// ORD789's expected delivery is two days before the seed time, so
		// eleven days later the ten-day window has passed.
		late := func() time.Time { return base.AddDate(0, 0, 11) }
		svc := NewService(store, late)
		got := svc.CreateReturn("ORD789", "too late")
		assert.Contains(t, got, "not currently eligible")
		assert.Empty(t, store.Returns())
	})

	t.Run("Should answer unknown ids with the not-found message", func(t *testing.T) {
		now := fixedClock()
		svc := NewService(NewStore(now), now)
		got := svc.CreateReturn("ORD000", "whatever")
		assert.Contains(t, got, "could not find an order with ID ORD000")
	})
}

func TestStaticHelp(t *testing.T) {
	now := fixedClock()
	svc := NewService(NewStore(now), now)

	t.Run("Should return the refund policy text", func(t *testing.T) {
		assert.Contains(t, svc.RefundPolicy(), "quality check")
	})

	t.Run("Should return payment failure guidance", func(t *testing.T) {
		assert.Contains(t, svc.PaymentFailedHelp(), "reversed automatically")
	})

	t.Run("Should return double charge guidance", func(t *testing.T) {
		assert.Contains(t, svc.DoubleChargeHelp(), "charged twice")
	})
}

func TestCanonicalID(t *testing.T) {
	t.Run("Should uppercase and strip trailing question marks and dots", func(t *testing.T) {
		assert.Equal(t, "ORD123", CanonicalID(" ord123?. "))
	})
}
