package order

import "github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"

// DisplayStatus is the single consolidated status shown to merchants and
// customers. It is never stored; it is derived on read from the independent
// status flags and the refund totals.
type DisplayStatus string

const (
	DisplayRefunded        DisplayStatus = "refunded"
	DisplayPartialRefund   DisplayStatus = "partial_refund"
	DisplayCancelled       DisplayStatus = "cancelled"
	DisplayAwaitingPayment DisplayStatus = "awaiting_payment"
	DisplayProcessing      DisplayStatus = "processing"
	DisplayShipped         DisplayStatus = "shipped"
)

// StatusSnapshot carries the raw flags the resolver needs. It decouples the
// resolver from the aggregate so read models restored straight from SQL rows
// can resolve a display status without rebuilding the full Order.
type StatusSnapshot struct {
	OrderStatus       Status
	PaymentStatus     PaymentStatus
	FulfillmentStatus FulfillmentStatus
	Total             kernel.Money
	TotalRefunded     kernel.Money
}

type displayRule struct {
	status  DisplayStatus
	matches func(StatusSnapshot) bool
}

// displayRules is the priority table. First match wins; order is load-bearing
// and downstream reporting depends on it, so changes here are breaking.
func displayRules() []displayRule {
	return []displayRule{
		{
			status: DisplayRefunded,
			matches: func(s StatusSnapshot) bool {
				if s.OrderStatus == StatusRefunded || s.PaymentStatus == PaymentRefunded {
					return true
				}
				return s.Total.IsPositive() && s.TotalRefunded.IsEqual(s.Total)
			},
		},
		{
			status: DisplayPartialRefund,
			matches: func(s StatusSnapshot) bool {
				return s.TotalRefunded.IsPositive() && s.Total.IsGreaterThan(s.TotalRefunded)
			},
		},
		{
			status: DisplayCancelled,
			matches: func(s StatusSnapshot) bool {
				return s.OrderStatus == StatusCancelled || s.OrderStatus == StatusCancellationRequested
			},
		},
		{
			status: DisplayAwaitingPayment,
			matches: func(s StatusSnapshot) bool {
				return s.PaymentStatus != PaymentPaid
			},
		},
		{
			status: DisplayProcessing,
			matches: func(s StatusSnapshot) bool {
				if s.FulfillmentStatus == Fulfilled || s.FulfillmentStatus == PartiallyFulfilled {
					return false
				}
				switch s.OrderStatus {
				case StatusShipped, StatusDelivered, StatusReadyForPickup:
					return false
				}
				return true
			},
		},
		{
			status:  DisplayShipped,
			matches: func(StatusSnapshot) bool { return true },
		},
	}
}

// ResolveDisplayStatus derives the consolidated display status from a
// snapshot of the independent flags. Evaluation walks the priority table top
// to bottom and returns on the first match, so ties between flags are broken
// by rank, never by recency.
func ResolveDisplayStatus(snapshot StatusSnapshot) DisplayStatus {
	for _, rule := range displayRules() {
		if rule.matches(snapshot) {
			return rule.status
		}
	}
	return DisplayShipped
}
