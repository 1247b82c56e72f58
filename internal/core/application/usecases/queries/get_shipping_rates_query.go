// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var (
	ErrGetShippingRatesQueryIsNotConstructed = errors.New(
		"GetShippingRatesQuery must be created via NewGetShippingRatesQuery constructor",
	)

	// ErrNoCarrierSelected is returned before any external call when the
	// caller did not pick a carrier.
	ErrNoCarrierSelected = errors.New("no carrier selected")
)

// GetShippingRatesQuery asks a carrier to quote services for an order's
// package set. The quote is ephemeral: nothing is persisted, and the caller
// must resubmit the same dimension overrides when purchasing a label.
//
// Example:
//
//	query, err := NewGetShippingRatesQuery(orderID, "ups", overrides)
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, query)
type GetShippingRatesQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	carrierID string
	overrides []order.DimensionOverride

	guard guard.ConstructorGuard
}

// NewGetShippingRatesQuery creates a rate quote query.
// Fails with ErrNoCarrierSelected when the carrier is empty, before any
// external call is issued.
func NewGetShippingRatesQuery(orderID kernel.UUID, carrierID string,
	overrides []order.DimensionOverride) (GetShippingRatesQuery, error) {
	query := GetShippingRatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetShippingRatesQuery{}, err
	}
	if carrierID == "" {
		return GetShippingRatesQuery{}, ErrNoCarrierSelected
	}

	query.orderID = orderID
	query.carrierID = carrierID
	query.overrides = append([]order.DimensionOverride(nil), overrides...)
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingRatesQueryIsNotConstructed)
}

// OrderID returns the order to quote for.
func (q GetShippingRatesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CarrierID returns the carrier to ask.
func (q GetShippingRatesQuery) CarrierID() string {
	return q.carrierID
}

// Overrides returns the caller-supplied dimension overrides.
func (q GetShippingRatesQuery) Overrides() []order.DimensionOverride {
	return q.overrides
}

// GetShippingRatesQueryResponse is the quote returned to the caller: the
// resolved package set and the carrier's service options in the order the
// carrier returned them.
type GetShippingRatesQueryResponse struct {
	CarrierID string
	Packages  []order.Package
	Options   []ports.RateOption
}
