package http

import (
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/application/usecases/queries"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/ports"
)

// Envelope is the uniform response wrapper. Success responses carry data;
// failures carry a message and no data.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// DimensionOverrideRequest is one caller-supplied replacement for an item's
// catalog dimensions. Zero fields defer to the catalog default.
type DimensionOverrideRequest struct {
	ItemID   string  `json:"item_id"`
	WeightKg float64 `json:"weight_kg"`
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// RateQuoteRequest asks one carrier to quote the order's package set.
type RateQuoteRequest struct {
	CarrierID string                     `json:"carrier_id"`
	Overrides []DimensionOverrideRequest `json:"overrides"`
}

// GenerateLabelRequest purchases a label for a previously quoted service.
// Overrides must be resubmitted exactly as quoted; nothing is persisted
// between the two phases.
type GenerateLabelRequest struct {
	CarrierID   string                     `json:"carrier_id"`
	ServiceCode string                     `json:"service_code"`
	Overrides   []DimensionOverrideRequest `json:"overrides"`
}

// MarkShippedRequest records shipping that happened outside any carrier
// integration.
type MarkShippedRequest struct {
	CarrierName    string `json:"carrier_name"`
	TrackingNumber string `json:"tracking_number"`
}

// RefundRequest submits a refund. Kind is "full" or "partial"; amount and
// currency are required for partial refunds and ignored for full ones.
type RefundRequest struct {
	Kind     string `json:"kind"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Reason   string `json:"reason"`
	Comment  string `json:"comment"`
}

// CancellationRequest opens a cancellation request on the order.
type CancellationRequest struct {
	Reason    string `json:"reason"`
	Requester string `json:"requester"`
}

// ResolveCancellationRequest approves or rejects the open cancellation
// request. Reason is required only for rejections.
type ResolveCancellationRequest struct {
	Resolver string `json:"resolver"`
	Reason   string `json:"reason"`
}

// RateOptionResponse is one quoted carrier service.
type RateOptionResponse struct {
	ServiceCode string `json:"service_code"`
	ServiceName string `json:"service_name"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	TransitDays int    `json:"transit_days"`
}

// PackageResponse is one resolved parcel of the quoted package set.
type PackageResponse struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weight_kg"`
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// RateQuoteResponse is the quote returned to the caller.
type RateQuoteResponse struct {
	CarrierID string               `json:"carrier_id"`
	Packages  []PackageResponse    `json:"packages"`
	Options   []RateOptionResponse `json:"options"`
}

// ShipmentResponse is the committed label purchase.
type ShipmentResponse struct {
	ShipmentID     string    `json:"shipment_id"`
	CarrierID      string    `json:"carrier_id"`
	ServiceCode    string    `json:"service_code"`
	TrackingNumber string    `json:"tracking_number"`
	LabelURL       string    `json:"label_url"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// RefundResponse is one applied refund ledger entry.
type RefundResponse struct {
	RefundID  string    `json:"refund_id"`
	Kind      string    `json:"kind"`
	Dispatch  string    `json:"dispatch"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// CancellationResponse is one cancellation request in its current state.
type CancellationResponse struct {
	RequestID   string     `json:"request_id"`
	Status      string     `json:"status"`
	Reason      string     `json:"reason"`
	Requester   string     `json:"requester,omitempty"`
	Resolver    string     `json:"resolver,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// OrderSummaryResponse is the consolidated order read model.
type OrderSummaryResponse struct {
	OrderID           string    `json:"order_id"`
	Number            string    `json:"number"`
	ChannelOrderID    string    `json:"channel_order_id,omitempty"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"payment_status"`
	FulfillmentStatus string    `json:"fulfillment_status"`
	DisplayStatus     string    `json:"display_status"`
	Total             int64     `json:"total"`
	TotalRefunded     int64     `json:"total_refunded"`
	RefundableAmount  int64     `json:"refundable_amount"`
	Currency          string    `json:"currency"`
	TrackingNumber    string    `json:"tracking_number,omitempty"`
	ShippingCarrier   string    `json:"shipping_carrier,omitempty"`
	OrderDate         time.Time `json:"order_date"`
}

func overridesFromRequest(requests []DimensionOverrideRequest) ([]order.DimensionOverride, error) {
	overrides := make([]order.DimensionOverride, 0, len(requests))
	for _, r := range requests {
		itemID, err := kernel.UUIDFromString(r.ItemID)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, order.DimensionOverride{
			ItemID:   itemID,
			WeightKg: r.WeightKg,
			LengthCm: r.LengthCm,
			WidthCm:  r.WidthCm,
			HeightCm: r.HeightCm,
		})
	}
	return overrides, nil
}

func rateQuoteResponseFrom(result queries.GetShippingRatesQueryResponse) RateQuoteResponse {
	packages := make([]PackageResponse, 0, len(result.Packages))
	for _, p := range result.Packages {
		packages = append(packages, PackageResponse{
			ItemID:   p.ItemID.String(),
			Quantity: p.Quantity,
			WeightKg: p.WeightKg,
			LengthCm: p.LengthCm,
			WidthCm:  p.WidthCm,
			HeightCm: p.HeightCm,
		})
	}

	options := make([]RateOptionResponse, 0, len(result.Options))
	for _, o := range result.Options {
		options = append(options, rateOptionResponseFrom(o))
	}

	return RateQuoteResponse{
		CarrierID: result.CarrierID,
		Packages:  packages,
		Options:   options,
	}
}

func rateOptionResponseFrom(option ports.RateOption) RateOptionResponse {
	return RateOptionResponse{
		ServiceCode: option.ServiceCode,
		ServiceName: option.ServiceName,
		Amount:      option.Amount.Amount(),
		Currency:    option.Amount.Currency(),
		TransitDays: option.TransitDays,
	}
}

func shipmentResponseFrom(shipment *order.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ShipmentID:     shipment.ID().String(),
		CarrierID:      shipment.CarrierID(),
		ServiceCode:    shipment.ServiceCode(),
		TrackingNumber: shipment.TrackingNumber(),
		LabelURL:       shipment.LabelURL(),
		GeneratedAt:    shipment.GeneratedAt(),
	}
}

func refundResponseFrom(record order.RefundRecord) RefundResponse {
	return RefundResponse{
		RefundID:  record.ID().String(),
		Kind:      record.Kind().String(),
		Dispatch:  record.Dispatch().String(),
		Amount:    record.Amount().Amount(),
		Currency:  record.Amount().Currency(),
		Reason:    record.Reason(),
		CreatedAt: record.CreatedAt(),
	}
}

func cancellationResponseFrom(request order.CancellationRequest) CancellationResponse {
	return CancellationResponse{
		RequestID:   request.ID().String(),
		Status:      request.Status().String(),
		Reason:      request.Reason(),
		Requester:   request.Requester(),
		Resolver:    request.Resolver(),
		RequestedAt: request.RequestedAt(),
		ResolvedAt:  request.ResolvedAt(),
	}
}

func orderSummaryResponseFrom(result queries.GetOrderSummaryQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		OrderID:           result.ID.String(),
		Number:            result.Number,
		ChannelOrderID:    result.ChannelOrderID,
		Status:            result.Status.String(),
		PaymentStatus:     result.PaymentStatus.String(),
		FulfillmentStatus: result.FulfillmentStatus.String(),
		DisplayStatus:     string(result.DisplayStatus),
		Total:             result.Total.Amount(),
		TotalRefunded:     result.TotalRefunded.Amount(),
		RefundableAmount:  result.RefundableAmount.Amount(),
		Currency:          result.Total.Currency(),
		TrackingNumber:    result.TrackingNumber,
		ShippingCarrier:   result.ShippingCarrier,
		OrderDate:         result.OrderDate,
	}
}
