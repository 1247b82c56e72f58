package order

import (
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
)

// CancellationStatus is the state of a single cancellation request.
//
//	CancellationPending -> CancellationApproved (terminal, order cancelled)
//	CancellationPending -> CancellationRejected (order status restored)
type CancellationStatus int

const (
	CancellationStatusUnknown CancellationStatus = iota
	CancellationPending
	CancellationApproved
	CancellationRejected
)

func getCancellationStatusStrings() map[CancellationStatus]string {
	return map[CancellationStatus]string{
		CancellationStatusUnknown: "unknown",
		CancellationPending:       "pending",
		CancellationApproved:      "approved",
		CancellationRejected:      "rejected",
	}
}

// String returns the name of the cancellation status.
func (s CancellationStatus) String() string {
	if str, ok := getCancellationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CancellationRequest is one entry in the order's cancellation history.
// At most one request may be pending at a time; resolved requests stay in the
// history for audit.
type CancellationRequest struct {
	id          kernel.UUID
	orderID     kernel.UUID
	reason      string
	requester   string
	status      CancellationStatus
	requestedAt time.Time
	resolvedAt  *time.Time
	resolver    string
}

// RestoreCancellationRequest reconstructs a history entry from persistence.
func RestoreCancellationRequest(id, orderID kernel.UUID, reason, requester string,
	status CancellationStatus, requestedAt time.Time, resolvedAt *time.Time,
	resolver string) (CancellationRequest, error) {
	if err := id.Validate(); err != nil {
		return CancellationRequest{}, err
	}
	if err := orderID.Validate(); err != nil {
		return CancellationRequest{}, err
	}

	return CancellationRequest{
		id:          id,
		orderID:     orderID,
		reason:      reason,
		requester:   requester,
		status:      status,
		requestedAt: requestedAt,
		resolvedAt:  resolvedAt,
		resolver:    resolver,
	}, nil
}

// ID returns the request identifier.
func (c CancellationRequest) ID() kernel.UUID { return c.id }

// OrderID returns the owning order.
func (c CancellationRequest) OrderID() kernel.UUID { return c.orderID }

// Reason returns the reason given when the request was opened.
func (c CancellationRequest) Reason() string { return c.reason }

// Requester identifies who opened the request.
func (c CancellationRequest) Requester() string { return c.requester }

// Status returns the request state.
func (c CancellationRequest) Status() CancellationStatus { return c.status }

// IsPending reports whether the request is still open.
func (c CancellationRequest) IsPending() bool { return c.status == CancellationPending }

// RequestedAt returns when the request was opened.
func (c CancellationRequest) RequestedAt() time.Time { return c.requestedAt }

// ResolvedAt returns when the request was approved or rejected, nil while pending.
func (c CancellationRequest) ResolvedAt() *time.Time { return c.resolvedAt }

// Resolver identifies who resolved the request, empty while pending.
func (c CancellationRequest) Resolver() string { return c.resolver }
