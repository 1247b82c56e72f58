package queries

import (
	"errors"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/guard"
)

var ErrGetOpenReconciliationsQueryIsNotConstructed = errors.New(
	"GetOpenReconciliationsQuery must be created via NewGetOpenReconciliationsQuery constructor",
)

// GetOpenReconciliationsQuery retrieves every ambiguous external commit still
// awaiting manual review. Used by the periodic sweep that keeps unresolved
// flags visible in the logs.
type GetOpenReconciliationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenReconciliationsQuery creates a query for unresolved reconciliation flags.
func NewGetOpenReconciliationsQuery() GetOpenReconciliationsQuery {
	return GetOpenReconciliationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenReconciliationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenReconciliationsQueryIsNotConstructed)
}

// GetOpenReconciliationsQueryResponse is one unresolved flag in the read model.
type GetOpenReconciliationsQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Gateway   string
	Operation string
	Details   string
	FlaggedAt time.Time
}
