package order

import (
	"fmt"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// Status represents the order-level lifecycle flag. It is one of three
// independently settable status dimensions (order, payment, fulfillment);
// none of them alone is the human-facing status, which is derived by
// ResolveDisplayStatus.
//
// Cancellation transitions:
//
//	<any non-terminal> -> CancellationRequested -> Cancelled
//	                                            -> <prior status restored>
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after checkout.
	StatusPending

	// StatusProcessing indicates a paid order being prepared for fulfillment.
	StatusProcessing

	// StatusShipped indicates the order left the warehouse.
	StatusShipped

	// StatusDelivered indicates the carrier reported delivery.
	StatusDelivered

	// StatusReadyForPickup indicates the order awaits customer pickup instead of shipping.
	StatusReadyForPickup

	// StatusCancellationRequested indicates an open cancellation request.
	// The prior status is retained on the order for restoration on rejection.
	StatusCancellationRequested

	// StatusCancelled is terminal: the cancellation request was approved.
	StatusCancelled

	// StatusRefunded indicates the order was fully refunded.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:               "unknown",
		StatusPending:               "pending",
		StatusProcessing:            "processing",
		StatusShipped:               "shipped",
		StatusDelivered:             "delivered",
		StatusReadyForPickup:        "ready_for_pickup",
		StatusCancellationRequested: "cancellation_requested",
		StatusCancelled:             "cancelled",
		StatusRefunded:              "refunded",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further lifecycle transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}
