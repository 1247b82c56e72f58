package queries

import (
	"context"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenReconciliationsQueryHandler lists unresolved reconciliation flags,
// oldest first.
type GetOpenReconciliationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenReconciliationsQueryHandler creates a handler for reconciliation queries.
func NewGetOpenReconciliationsQueryHandler(db *gorm.DB) GetOpenReconciliationsQueryHandler {
	return GetOpenReconciliationsQueryHandler{db: db}
}

// Handle executes the query for unresolved flags.
func (h GetOpenReconciliationsQueryHandler) Handle(ctx context.Context,
	query GetOpenReconciliationsQuery) ([]GetOpenReconciliationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	flags := make([]GetOpenReconciliationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			gateway,
			operation,
			details,
			flagged_at
		FROM reconciliations
		WHERE resolved = false
		ORDER BY flagged_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var gateway, operation, details string
		var flaggedAt time.Time

		if err = rows.Scan(&id, &orderID, &gateway, &operation, &details, &flaggedAt); err != nil {
			return nil, err
		}

		flagID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		flagOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		flags = append(flags, GetOpenReconciliationsQueryResponse{
			ID:        flagID,
			OrderID:   flagOrderID,
			Gateway:   gateway,
			Operation: operation,
			Details:   details,
			FlaggedAt: flaggedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return flags, nil
}
