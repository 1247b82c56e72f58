package order

import (
	"fmt"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// RefundKind distinguishes a full refund (effective amount is whatever
// remains refundable) from a partial refund of an explicit amount.
type RefundKind int

const (
	RefundKindUnknown RefundKind = iota
	FullRefund
	PartialRefund
)

func getRefundKindStrings() map[RefundKind]string {
	return map[RefundKind]string{
		RefundKindUnknown: "unknown",
		FullRefund:        "full",
		PartialRefund:     "partial",
	}
}

// Validate checks if the RefundKind value is valid.
func (k RefundKind) Validate() error {
	if k == RefundKindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("refund kind",
			fmt.Errorf("%d is not a valid refund kind", k))
	}
	if _, ok := getRefundKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("refund kind",
			fmt.Errorf("%d is not a valid refund kind", k))
	}
	return nil
}

// String returns the name of the refund kind.
func (k RefundKind) String() string {
	if str, ok := getRefundKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// DispatchTarget records where a refund's money movement was dispatched:
// locally only, or through the external sales channel the order came from.
type DispatchTarget int

const (
	DispatchUnknown DispatchTarget = iota
	DispatchLocal
	DispatchChannel
)

func getDispatchTargetStrings() map[DispatchTarget]string {
	return map[DispatchTarget]string{
		DispatchUnknown: "unknown",
		DispatchLocal:   "local",
		DispatchChannel: "channel",
	}
}

// String returns the name of the dispatch target.
func (d DispatchTarget) String() string {
	if str, ok := getDispatchTargetStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// RefundRecord is one entry in the order's append-only refund ledger.
// Records are never updated or deleted; the ledger must sum exactly to the
// order's total_refunded at all times.
type RefundRecord struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	kind      RefundKind
	dispatch  DispatchTarget
	reason    string
	comment   string
	createdAt time.Time
}

// RestoreRefundRecord reconstructs a ledger entry from persistence.
func RestoreRefundRecord(id, orderID kernel.UUID, amount kernel.Money, kind RefundKind,
	dispatch DispatchTarget, reason, comment string, createdAt time.Time) (RefundRecord, error) {
	if err := id.Validate(); err != nil {
		return RefundRecord{}, err
	}
	if err := orderID.Validate(); err != nil {
		return RefundRecord{}, err
	}
	if err := amount.Validate(); err != nil {
		return RefundRecord{}, err
	}
	if err := kind.Validate(); err != nil {
		return RefundRecord{}, err
	}

	return RefundRecord{
		id:        id,
		orderID:   orderID,
		amount:    amount,
		kind:      kind,
		dispatch:  dispatch,
		reason:    reason,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

// ID returns the ledger entry identifier.
func (r RefundRecord) ID() kernel.UUID { return r.id }

// OrderID returns the owning order.
func (r RefundRecord) OrderID() kernel.UUID { return r.orderID }

// Amount returns the effective refunded amount.
// For a full refund this is the refundable amount at the time of the refund,
// which is less than the order total when a partial refund preceded it.
func (r RefundRecord) Amount() kernel.Money { return r.amount }

// Kind returns whether the refund was full or partial.
func (r RefundRecord) Kind() RefundKind { return r.kind }

// Dispatch returns where the money movement was dispatched.
func (r RefundRecord) Dispatch() DispatchTarget { return r.dispatch }

// Reason returns the merchant-provided reason code.
func (r RefundRecord) Reason() string { return r.reason }

// Comment returns the optional free-form comment.
func (r RefundRecord) Comment() string { return r.comment }

// CreatedAt returns when the refund was applied.
func (r RefundRecord) CreatedAt() time.Time { return r.createdAt }
