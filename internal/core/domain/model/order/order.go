package order

import (
	"errors"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when validating a zero-value Order.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via NewOrder or RestoreOrder")

// Refund state conflicts.
var (
	ErrOrderNotPaid            = errs.NewStateConflictError("refund", "order is not paid")
	ErrAlreadyRefunded         = errs.NewStateConflictError("refund", "order is already fully refunded")
	ErrAmountExceedsRefundable = errs.NewStateConflictError("refund", "amount exceeds refundable amount")
)

// Cancellation state conflicts.
var (
	ErrAlreadyCancelled        = errs.NewStateConflictError("cancellation", "order is already cancelled or refunded")
	ErrCancellationAlreadyOpen = errs.NewStateConflictError("cancellation", "a cancellation request is already open")
	ErrNoOpenCancellation      = errs.NewStateConflictError("cancellation", "no open cancellation request")
)

// Shipping and payment state conflicts.
var (
	ErrShipmentAlreadyExists = errs.NewStateConflictError("shipping", "a shipment already exists for this order")
	ErrOrderCancelled        = errs.NewStateConflictError("shipping", "order is cancelled")
	ErrOrderAlreadyFulfilled = errs.NewStateConflictError("shipping", "order is already fulfilled")
	ErrAlreadyPaid           = errs.NewStateConflictError("payment", "order is already paid")
)

// Order is the aggregate root for everything that happens to an order after
// checkout: payment flags, refunds, cancellation, and shipping. All writes go
// through its methods so the refund and shipment invariants cannot be bypassed.
//
// Example:
//
//	total order 200.00 USD, already paid:
//
//	rec, _ := o.ApplyRefund(order.PartialRefund, seventyFive, "damaged", "", now)
//	// total_refunded = 75.00, payment stays paid
//	rec, _ = o.ApplyRefund(order.FullRefund, kernel.Money{}, "goodwill", "", now)
//	// refunds exactly 125.00, payment flips to refunded
type Order struct {
	id     kernel.UUID
	number string

	channelID      *kernel.UUID
	channelOrderID string

	subtotal      kernel.Money
	shippingCost  kernel.Money
	tax           kernel.Money
	discount      kernel.Money
	total         kernel.Money
	totalRefunded kernel.Money

	status            Status
	paymentStatus     PaymentStatus
	fulfillmentStatus FulfillmentStatus
	returnStatus      *string

	// statusBeforeCancellation holds the order status as of just before an
	// open cancellation request, so rejection restores it exactly.
	// StatusUnknown when no request is open.
	statusBeforeCancellation Status

	shippingAddress kernel.Address

	trackingNumber  *string
	trackingURL     *string
	shippingCarrier *string

	orderDate               time.Time
	paidAt                  *time.Time
	shippedAt               *time.Time
	deliveredAt             *time.Time
	cancellationRequestedAt *time.Time
	refundInitiatedAt       *time.Time

	items         []*Item
	refunds       []RefundRecord
	cancellations []CancellationRequest
	shipment      *Shipment

	isConstructed bool
}

// NewOrder creates a new order in its initial state: pending, unpaid,
// unfulfilled, nothing refunded. The total is derived from the component
// amounts; all amounts must share one currency.
func NewOrder(id kernel.UUID, number string, shippingAddress kernel.Address,
	subtotal, shippingCost, tax, discount kernel.Money, orderDate time.Time) (*Order, error) {
	err := errors.Join(
		id.Validate(),
		shippingAddress.Validate(),
		subtotal.Validate(),
		shippingCost.Validate(),
		tax.Validate(),
		discount.Validate(),
	)
	if err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	total, err := subtotal.Add(shippingCost)
	if err != nil {
		return nil, err
	}
	total, err = total.Add(tax)
	if err != nil {
		return nil, err
	}
	total, err = total.Sub(discount)
	if err != nil {
		return nil, err
	}

	totalRefunded, err := kernel.NewMoney(0, total.Currency())
	if err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		number:            number,
		subtotal:          subtotal,
		shippingCost:      shippingCost,
		tax:               tax,
		discount:          discount,
		total:             total,
		totalRefunded:     totalRefunded,
		status:            StatusPending,
		paymentStatus:     PaymentPending,
		fulfillmentStatus: Unfulfilled,
		shippingAddress:   shippingAddress,
		orderDate:         orderDate,
		isConstructed:     true,
	}, nil
}

// RestoreOrderParams carries a persisted order's full state for RestoreOrder.
type RestoreOrderParams struct {
	ID     kernel.UUID
	Number string

	ChannelID      *kernel.UUID
	ChannelOrderID string

	Subtotal      kernel.Money
	ShippingCost  kernel.Money
	Tax           kernel.Money
	Discount      kernel.Money
	Total         kernel.Money
	TotalRefunded kernel.Money

	Status                   Status
	PaymentStatus            PaymentStatus
	FulfillmentStatus        FulfillmentStatus
	ReturnStatus             *string
	StatusBeforeCancellation Status

	ShippingAddress kernel.Address

	TrackingNumber  *string
	TrackingURL     *string
	ShippingCarrier *string

	OrderDate               time.Time
	PaidAt                  *time.Time
	ShippedAt               *time.Time
	DeliveredAt             *time.Time
	CancellationRequestedAt *time.Time
	RefundInitiatedAt       *time.Time

	Items         []*Item
	Refunds       []RefundRecord
	Cancellations []CancellationRequest
	Shipment      *Shipment
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// trusts the stored totals rather than re-deriving them, but still refuses
// state that breaks the refund invariant.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	err := errors.Join(
		params.ID.Validate(),
		params.ShippingAddress.Validate(),
		params.Total.Validate(),
		params.TotalRefunded.Validate(),
		params.Status.Validate(),
		params.PaymentStatus.Validate(),
		params.FulfillmentStatus.Validate(),
	)
	if err != nil {
		return nil, err
	}
	if params.Number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if params.TotalRefunded.IsGreaterThan(params.Total) {
		return nil, errs.NewInvariantViolationError("total_refunded <= total",
			params.TotalRefunded.String()+" exceeds "+params.Total.String())
	}

	return &Order{
		id:                       params.ID,
		number:                   params.Number,
		channelID:                params.ChannelID,
		channelOrderID:           params.ChannelOrderID,
		subtotal:                 params.Subtotal,
		shippingCost:             params.ShippingCost,
		tax:                      params.Tax,
		discount:                 params.Discount,
		total:                    params.Total,
		totalRefunded:            params.TotalRefunded,
		status:                   params.Status,
		paymentStatus:            params.PaymentStatus,
		fulfillmentStatus:        params.FulfillmentStatus,
		returnStatus:             params.ReturnStatus,
		statusBeforeCancellation: params.StatusBeforeCancellation,
		shippingAddress:          params.ShippingAddress,
		trackingNumber:           params.TrackingNumber,
		trackingURL:              params.TrackingURL,
		shippingCarrier:          params.ShippingCarrier,
		orderDate:                params.OrderDate,
		paidAt:                   params.PaidAt,
		shippedAt:                params.ShippedAt,
		deliveredAt:              params.DeliveredAt,
		cancellationRequestedAt:  params.CancellationRequestedAt,
		refundInitiatedAt:        params.RefundInitiatedAt,
		items:                    params.Items,
		refunds:                  params.Refunds,
		cancellations:            params.Cancellations,
		shipment:                 params.Shipment,
		isConstructed:            true,
	}, nil
}

// AddItem appends an order line. Totals are not recomputed; line management
// belongs to checkout, which fixes totals before this aggregate takes over.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// LinkToChannel marks the order as channel-linked: its canonical record lives
// in an external marketplace and refunds/cancellations must be mirrored there.
func (o *Order) LinkToChannel(channelID kernel.UUID, channelOrderID string) error {
	if err := channelID.Validate(); err != nil {
		return err
	}
	if channelOrderID == "" {
		return errs.NewValueIsRequiredError("channelOrderID")
	}
	o.channelID = &channelID
	o.channelOrderID = channelOrderID
	return nil
}

// MarkPaid records successful payment capture and moves a pending order into
// processing.
func (o *Order) MarkPaid(at time.Time) error {
	if o.paymentStatus == PaymentPaid {
		return ErrAlreadyPaid
	}
	o.paymentStatus = PaymentPaid
	o.paidAt = &at
	if o.status == StatusPending {
		o.status = StatusProcessing
	}
	return nil
}

// RefundableAmount returns total minus total_refunded, the upper bound for
// any single refund.
func (o *Order) RefundableAmount() kernel.Money {
	remaining, err := o.total.Sub(o.totalRefunded)
	if err != nil {
		// Unreachable while the refund invariant holds.
		zero, _ := kernel.NewMoney(0, o.total.Currency())
		return zero
	}
	return remaining
}

// IsRefunded reports whether the order is fully refunded.
func (o *Order) IsRefunded() bool {
	return o.total.IsPositive() && o.totalRefunded.IsEqual(o.total)
}

// IsChannelLinked reports whether refunds and cancellations must be mirrored
// to an external sales channel.
func (o *Order) IsChannelLinked() bool {
	return o.channelID != nil && o.channelOrderID != ""
}

// ApplyRefund appends a refund to the ledger and advances total_refunded.
//
// For FullRefund the amount argument is ignored and the effective amount is
// exactly the refundable amount, so a full refund after a prior partial
// refund refunds only the remainder. For PartialRefund the amount is required
// and must satisfy 0 < amount <= refundable amount.
//
// Only the local mutation happens here; dispatching the money movement to a
// channel gateway is the caller's job and must succeed before this mutation
// is committed.
func (o *Order) ApplyRefund(kind RefundKind, amount kernel.Money, reason, comment string, at time.Time) (RefundRecord, error) {
	if o.IsRefunded() || o.paymentStatus == PaymentRefunded {
		return RefundRecord{}, ErrAlreadyRefunded
	}
	if o.paymentStatus != PaymentPaid {
		return RefundRecord{}, ErrOrderNotPaid
	}
	if err := kind.Validate(); err != nil {
		return RefundRecord{}, err
	}

	var effective kernel.Money
	switch kind {
	case FullRefund:
		effective = o.RefundableAmount()
		if !effective.IsPositive() {
			return RefundRecord{}, ErrAlreadyRefunded
		}
	case PartialRefund:
		if err := amount.Validate(); err != nil {
			return RefundRecord{}, errs.NewValueIsRequiredError("amount")
		}
		if amount.Currency() != o.total.Currency() {
			return RefundRecord{}, kernel.ErrCurrencyMismatch
		}
		if !amount.IsPositive() {
			return RefundRecord{}, errs.NewValueIsOutOfRangeError("amount",
				amount.Amount(), 1, o.RefundableAmount().Amount())
		}
		if amount.IsGreaterThan(o.RefundableAmount()) {
			return RefundRecord{}, ErrAmountExceedsRefundable
		}
		effective = amount
	}

	newTotal, err := o.totalRefunded.Add(effective)
	if err != nil {
		return RefundRecord{}, err
	}
	if newTotal.IsGreaterThan(o.total) {
		return RefundRecord{}, errs.NewInvariantViolationError("total_refunded <= total",
			newTotal.String()+" exceeds "+o.total.String())
	}

	dispatch := DispatchLocal
	if o.IsChannelLinked() {
		dispatch = DispatchChannel
	}

	record := RefundRecord{
		id:        kernel.NewUUID(),
		orderID:   o.id,
		amount:    effective,
		kind:      kind,
		dispatch:  dispatch,
		reason:    reason,
		comment:   comment,
		createdAt: at,
	}

	o.refunds = append(o.refunds, record)
	o.totalRefunded = newTotal
	if o.refundInitiatedAt == nil {
		o.refundInitiatedAt = &at
	}
	if o.totalRefunded.IsEqual(o.total) {
		o.paymentStatus = PaymentRefunded
		o.status = StatusRefunded
	}

	if err := o.checkRefundLedger(); err != nil {
		return RefundRecord{}, err
	}
	return record, nil
}

// checkRefundLedger verifies the append-only ledger still sums exactly to
// total_refunded. A mismatch is a bug, never auto-corrected.
func (o *Order) checkRefundLedger() error {
	var sum int64
	for _, r := range o.refunds {
		sum += r.amount.Amount()
	}
	if sum != o.totalRefunded.Amount() {
		return errs.NewInvariantViolationError("refund ledger sums to total_refunded",
			"ledger and total_refunded disagree")
	}
	return nil
}

func (o *Order) openCancellation() *CancellationRequest {
	for i := range o.cancellations {
		if o.cancellations[i].IsPending() {
			return &o.cancellations[i]
		}
	}
	return nil
}

// HasOpenCancellation reports whether a cancellation request is pending.
func (o *Order) HasOpenCancellation() bool {
	return o.openCancellation() != nil
}

// RequestCancellation opens a cancellation request and parks the order in
// cancellation_requested, remembering the prior status for exact restoration
// if the request is rejected.
func (o *Order) RequestCancellation(reason, requester string, at time.Time) (CancellationRequest, error) {
	if o.status == StatusCancelled || o.status == StatusRefunded || o.paymentStatus == PaymentRefunded {
		return CancellationRequest{}, ErrAlreadyCancelled
	}
	if o.status == StatusCancellationRequested || o.HasOpenCancellation() {
		return CancellationRequest{}, ErrCancellationAlreadyOpen
	}
	if reason == "" {
		return CancellationRequest{}, errs.NewValueIsRequiredError("reason")
	}

	request := CancellationRequest{
		id:          kernel.NewUUID(),
		orderID:     o.id,
		reason:      reason,
		requester:   requester,
		status:      CancellationPending,
		requestedAt: at,
	}
	o.cancellations = append(o.cancellations, request)
	o.statusBeforeCancellation = o.status
	o.status = StatusCancellationRequested
	o.cancellationRequestedAt = &at
	return request, nil
}

// ApproveCancellation resolves the open request and cancels the order.
// Terminal: a cancelled order accepts no further lifecycle transitions.
func (o *Order) ApproveCancellation(resolver string, at time.Time) (CancellationRequest, error) {
	request := o.openCancellation()
	if request == nil {
		return CancellationRequest{}, ErrNoOpenCancellation
	}

	request.status = CancellationApproved
	request.resolvedAt = &at
	request.resolver = resolver
	o.status = StatusCancelled
	o.statusBeforeCancellation = StatusUnknown
	return *request, nil
}

// RejectCancellation resolves the open request and restores the order status
// as of just before the request was opened. Orders restored without a
// recorded prior status fall back to processing.
func (o *Order) RejectCancellation(resolver string, at time.Time) (CancellationRequest, error) {
	request := o.openCancellation()
	if request == nil {
		return CancellationRequest{}, ErrNoOpenCancellation
	}

	request.status = CancellationRejected
	request.resolvedAt = &at
	request.resolver = resolver
	if o.statusBeforeCancellation != StatusUnknown {
		o.status = o.statusBeforeCancellation
	} else {
		o.status = StatusProcessing
	}
	o.statusBeforeCancellation = StatusUnknown
	return *request, nil
}

// AttachShipment records a purchased label as the order's single shipment and
// marks the order fulfilled and shipped. The caller must have already
// committed the purchase with the carrier; this is the local half of that
// two-sided commit.
//
// Exactly one shipment may ever exist per order, whether from a label
// purchase or a manual marking.
func (o *Order) AttachShipment(carrierID, serviceCode, trackingNumber, trackingURL,
	labelURL string, packages []Package, at time.Time) (*Shipment, error) {
	if o.shipment != nil {
		return nil, ErrShipmentAlreadyExists
	}
	if o.status == StatusCancelled {
		return nil, ErrOrderCancelled
	}
	if o.fulfillmentStatus == Fulfilled {
		return nil, ErrOrderAlreadyFulfilled
	}

	shipment, err := newShipment(kernel.NewUUID(), o.id, carrierID, serviceCode,
		trackingNumber, labelURL, packages, at)
	if err != nil {
		return nil, err
	}

	o.shipment = shipment
	o.trackingNumber = &trackingNumber
	if trackingURL != "" {
		o.trackingURL = &trackingURL
	}
	o.shippingCarrier = &carrierID
	o.fulfillmentStatus = Fulfilled
	o.shippedAt = &at
	if o.status == StatusPending || o.status == StatusProcessing {
		o.status = StatusShipped
	}
	return shipment, nil
}

// MarkShippedManually records shipping that happened outside any carrier
// integration. Mutually exclusive with a purchased label: once a shipment
// exists the carrier has billed for it, and a manual marking would hide that.
func (o *Order) MarkShippedManually(carrierName, trackingNumber string, at time.Time) error {
	if o.shipment != nil {
		return ErrShipmentAlreadyExists
	}
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if o.status == StatusCancelled {
		return ErrOrderCancelled
	}
	if o.fulfillmentStatus == Fulfilled {
		return ErrOrderAlreadyFulfilled
	}

	o.shippingCarrier = &carrierName
	o.trackingNumber = &trackingNumber
	o.fulfillmentStatus = Fulfilled
	o.shippedAt = &at
	if o.status == StatusPending || o.status == StatusProcessing {
		o.status = StatusShipped
	}
	return nil
}

// MarkDelivered records carrier-reported delivery.
func (o *Order) MarkDelivered(at time.Time) error {
	if o.fulfillmentStatus != Fulfilled {
		return errs.NewStateConflictError("delivery", "order has not shipped")
	}
	o.deliveredAt = &at
	if o.status == StatusShipped {
		o.status = StatusDelivered
	}
	return nil
}

// StatusSnapshot returns the raw flags the display status resolver consumes.
func (o *Order) StatusSnapshot() StatusSnapshot {
	return StatusSnapshot{
		OrderStatus:       o.status,
		PaymentStatus:     o.paymentStatus,
		FulfillmentStatus: o.fulfillmentStatus,
		Total:             o.total,
		TotalRefunded:     o.totalRefunded,
	}
}

// DisplayStatus derives the consolidated human-facing status.
func (o *Order) DisplayStatus() DisplayStatus {
	return ResolveDisplayStatus(o.StatusSnapshot())
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-facing order number.
func (o *Order) Number() string { return o.number }

// ChannelID returns the external sales channel reference, nil for local orders.
func (o *Order) ChannelID() *kernel.UUID { return o.channelID }

// ChannelOrderID returns the order's identifier in the external channel,
// empty for local orders.
func (o *Order) ChannelOrderID() string { return o.channelOrderID }

// Subtotal returns the item subtotal.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// ShippingCost returns the shipping amount charged at checkout.
func (o *Order) ShippingCost() kernel.Money { return o.shippingCost }

// Tax returns the tax amount.
func (o *Order) Tax() kernel.Money { return o.tax }

// Discount returns the discount amount.
func (o *Order) Discount() kernel.Money { return o.discount }

// Total returns the grand total.
func (o *Order) Total() kernel.Money { return o.total }

// TotalRefunded returns the refunded total to date.
func (o *Order) TotalRefunded() kernel.Money { return o.totalRefunded }

// Status returns the order lifecycle flag.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the payment flag.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// FulfillmentStatus returns the fulfillment flag.
func (o *Order) FulfillmentStatus() FulfillmentStatus { return o.fulfillmentStatus }

// ReturnStatus returns the channel-reported return state, nil when absent.
func (o *Order) ReturnStatus() *string { return o.returnStatus }

// StatusBeforeCancellation returns the status to restore on cancellation
// rejection, StatusUnknown when no request is open.
func (o *Order) StatusBeforeCancellation() Status { return o.statusBeforeCancellation }

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() kernel.Address { return o.shippingAddress }

// TrackingNumber returns the carrier tracking number, nil before shipping.
func (o *Order) TrackingNumber() *string { return o.trackingNumber }

// TrackingURL returns the carrier tracking page, nil when unknown.
func (o *Order) TrackingURL() *string { return o.trackingURL }

// ShippingCarrier returns the carrier name or identifier, nil before shipping.
func (o *Order) ShippingCarrier() *string { return o.shippingCarrier }

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// PaidAt returns when payment was captured, nil while unpaid.
func (o *Order) PaidAt() *time.Time { return o.paidAt }

// ShippedAt returns when the order shipped, nil before shipping.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// DeliveredAt returns when delivery was reported, nil before delivery.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CancellationRequestedAt returns when the latest cancellation request was
// opened, nil if none was ever opened.
func (o *Order) CancellationRequestedAt() *time.Time { return o.cancellationRequestedAt }

// RefundInitiatedAt returns when the first refund was applied, nil if none.
func (o *Order) RefundInitiatedAt() *time.Time { return o.refundInitiatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Refunds returns a copy of the append-only refund ledger.
func (o *Order) Refunds() []RefundRecord {
	refunds := make([]RefundRecord, len(o.refunds))
	copy(refunds, o.refunds)
	return refunds
}

// Cancellations returns a copy of the cancellation history.
func (o *Order) Cancellations() []CancellationRequest {
	cancellations := make([]CancellationRequest, len(o.cancellations))
	copy(cancellations, o.cancellations)
	return cancellations
}

// Shipment returns the order's single shipment, nil when none exists.
func (o *Order) Shipment() *Shipment { return o.shipment }

// Validate checks if the Order is properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}
