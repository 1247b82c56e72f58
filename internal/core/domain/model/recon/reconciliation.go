// Package recon contains the reconciliation record written when an external
// commit call (label purchase, channel refund submission) times out after the
// commit may already have happened on the remote side. Such outcomes are
// ambiguous and must never be guessed locally; they are flagged for manual
// review instead.
package recon

import (
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// ErrReconciliationIsNotConstructed is returned when validating a zero-value Reconciliation.
var ErrReconciliationIsNotConstructed = errs.NewValueIsRequiredError(
	"Reconciliation must be created via NewReconciliation or RestoreReconciliation")

// Reconciliation is a flag for one ambiguous external commit. It is written
// outside the order transaction so it survives the rollback of the operation
// that produced it.
type Reconciliation struct {
	id        kernel.UUID
	orderID   kernel.UUID
	gateway   string
	operation string
	details   string
	flaggedAt time.Time
	resolved  bool

	isConstructed bool
}

// NewReconciliation flags an ambiguous external commit for manual review.
func NewReconciliation(id, orderID kernel.UUID, gateway, operation, details string,
	flaggedAt time.Time) (*Reconciliation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if gateway == "" {
		return nil, errs.NewValueIsRequiredError("gateway")
	}
	if operation == "" {
		return nil, errs.NewValueIsRequiredError("operation")
	}

	return &Reconciliation{
		id:            id,
		orderID:       orderID,
		gateway:       gateway,
		operation:     operation,
		details:       details,
		flaggedAt:     flaggedAt,
		isConstructed: true,
	}, nil
}

// RestoreReconciliation reconstructs a Reconciliation from persistence.
func RestoreReconciliation(id, orderID kernel.UUID, gateway, operation, details string,
	flaggedAt time.Time, resolved bool) (*Reconciliation, error) {
	r, err := NewReconciliation(id, orderID, gateway, operation, details, flaggedAt)
	if err != nil {
		return nil, err
	}
	r.resolved = resolved
	return r, nil
}

// ID returns the record identifier.
func (r *Reconciliation) ID() kernel.UUID { return r.id }

// OrderID returns the order whose external commit is ambiguous.
func (r *Reconciliation) OrderID() kernel.UUID { return r.orderID }

// Gateway names the external system the ambiguous call went to.
func (r *Reconciliation) Gateway() string { return r.gateway }

// Operation names the call whose outcome is unknown.
func (r *Reconciliation) Operation() string { return r.operation }

// Details carries free-form context for the reviewer.
func (r *Reconciliation) Details() string { return r.details }

// FlaggedAt returns when the ambiguity was recorded.
func (r *Reconciliation) FlaggedAt() time.Time { return r.flaggedAt }

// IsResolved reports whether a human closed the flag.
func (r *Reconciliation) IsResolved() bool { return r.resolved }

// Resolve closes the flag after manual review.
func (r *Reconciliation) Resolve() {
	r.resolved = true
}

// Validate checks if the Reconciliation is properly constructed.
func (r *Reconciliation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReconciliationIsNotConstructed
	}
	return nil
}
