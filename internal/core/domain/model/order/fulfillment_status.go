package order

import (
	"fmt"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// FulfillmentStatus tracks physical fulfillment independently of the lifecycle
// and payment flags. It flips to Fulfilled when a shipping label is purchased
// or the order is manually marked shipped.
type FulfillmentStatus int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment status.
	FulfillmentUnknown FulfillmentStatus = iota

	// Unfulfilled indicates no items have shipped.
	Unfulfilled

	// PartiallyFulfilled indicates some but not all items have shipped.
	PartiallyFulfilled

	// Fulfilled indicates all items have shipped or were picked up.
	Fulfilled

	// FulfillmentReadyForPickup indicates the order is packed and awaiting
	// customer pickup instead of carrier shipping.
	FulfillmentReadyForPickup
)

func getFulfillmentStatusStrings() map[FulfillmentStatus]string {
	return map[FulfillmentStatus]string{
		FulfillmentUnknown:        "unknown",
		Unfulfilled:               "unfulfilled",
		PartiallyFulfilled:        "partially_fulfilled",
		Fulfilled:                 "fulfilled",
		FulfillmentReadyForPickup: "ready_for_pickup",
	}
}

// Validate checks if the FulfillmentStatus value is valid.
func (s FulfillmentStatus) Validate() error {
	if s == FulfillmentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment status",
			fmt.Errorf("%d is not a valid fulfillment status", s))
	}
	if _, ok := getFulfillmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment status",
			fmt.Errorf("%d is not a valid fulfillment status", s))
	}
	return nil
}

// String returns the snake_case name of the fulfillment status.
func (s FulfillmentStatus) String() string {
	if str, ok := getFulfillmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
