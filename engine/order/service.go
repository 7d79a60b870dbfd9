package order

import (
	"fmt"
	"time"
)

// dateLayout renders dates the way the storefront shows them, e.g. "02 Jan 2006".
const dateLayout = "02 Jan 2006"

// returnWindowDays is the number of days after the expected delivery date
// during which a delivered order can still be returned through the assistant.
const returnWindowDays = 10

// Service produces the customer-facing prose for order operations. All
// operations return a message string; distinguishable failures (unknown id,
// ineligible return) are conversational branches, not errors.
type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// OrderStatus composes a human-readable status summary for the given order id.
func (s *Service) OrderStatus(id string) string {
	oid := CanonicalID(id)
	o, ok := s.store.Lookup(oid)
	if !ok {
		return fmt.Sprintf(
			"I could not find any order with ID %s. "+
				"Please double‑check the ID on your 'My Orders' page before trying again.",
			oid,
		)
	}
	var detail string
	switch o.Status {
	case StatusProcessing:
		detail = "your order has been received and is being prepared for shipment at our warehouse."
	case StatusShipped:
		detail = "your order has left the warehouse and is with the courier partner. " +
			"You will find a tracking link on the 'My Orders' page for live updates."
	case StatusDelivered:
		detail = "your order has already been delivered. If you did not receive it, " +
			"please contact customer support as soon as possible."
	default:
		detail = "your order is in the current status."
	}
	return fmt.Sprintf(
		"Order %s is currently **%s**. It was placed on %s, and the expected delivery date is %s. "+
			"In simple terms, %s",
		o.ID,
		o.Status,
		o.CreatedAt.Format(dateLayout),
		o.ExpectedDelivery.Format(dateLayout),
		detail,
	)
}

// CreateReturn opens a return request when the order is eligible: delivered,
// and within the return window measured from the expected delivery date.
func (s *Service) CreateReturn(id, reason string) string {
	oid := CanonicalID(id)
	o, ok := s.store.Lookup(oid)
	if !ok {
		return fmt.Sprintf(
			"I could not find an order with ID %s. "+
				"Please verify the ID in your 'My Orders' page before requesting a return.",
			oid,
		)
	}
	daysSinceDelivery := int(s.now().Sub(o.ExpectedDelivery).Hours() / 24)
	if o.Status != StatusDelivered || daysSinceDelivery > returnWindowDays {
		return "This order is not currently eligible for a return through the chatbot. " +
			"Returns are usually allowed only for recently delivered orders within " +
			"the return window shown on the product page."
	}
	req := ReturnRequest{
		ID:        "RET-" + oid,
		OrderID:   oid,
		Reason:    reason,
		CreatedAt: s.now(),
	}
	s.store.AppendReturn(req)
	return fmt.Sprintf(
		"A return request **%s** has been created for order %s with reason: '%s'. "+
			"Our team will review it and share pickup details by email or SMS within 1–2 business days.",
		req.ID,
		oid,
		reason,
	)
}

// RefundPolicy explains how and when refunds are issued.
func (s *Service) RefundPolicy() string {
	return "Refunds are usually processed after the returned item is picked up and " +
		"passes a quality check. For most orders, this takes 5–7 business days " +
		"from the date of pickup. Refunds are sent back to the original payment " +
		"method whenever possible. For Cash on Delivery orders, the refund is " +
		"typically issued to your bank account, UPI ID, or as store credit, " +
		"depending on your preference during the return process."
}

// PaymentFailedHelp explains what happens after a failed but debited payment.
func (s *Service) PaymentFailedHelp() string {
	return "If your payment failed but money was deducted, the amount is usually " +
		"reversed automatically by your bank or payment provider within 5–7 " +
		"business days. If the amount is not credited back after this period, " +
		"please contact customer support with your transaction reference number."
}

// DoubleChargeHelp explains duplicate-charge reversal.
func (s *Service) DoubleChargeHelp() string {
	return "If you were charged twice for the same order, one of the charges is " +
		"usually reversed automatically within 5–7 business days. " +
		"If both charges remain after that, please contact customer support " +
		"with both transaction IDs for quick resolution."
}
