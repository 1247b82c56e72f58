package order

import (
	"fmt"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// PaymentStatus tracks the money side of the order independently of the
// lifecycle and fulfillment flags. Payment capture happens upstream; here the
// flag gates refunds (only paid orders are refundable) and flips to
// PaymentRefunded only when the refunded total reaches the order total.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates payment has not been captured yet.
	PaymentPending

	// PaymentPaid indicates the order was paid in full.
	// Partial refunds keep the order in this status.
	PaymentPaid

	// PaymentRefunded indicates the refunded total reached the order total.
	PaymentRefunded

	// PaymentFailed indicates payment capture failed upstream.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
		PaymentFailed:   "failed",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the snake_case name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
