package ports

import (
	"context"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/recon"
)

// ReconciliationRepository defines the persistence contract for ambiguous
// external-commit flags.
//
// Implementations must write outside any caller transaction: a flag is
// recorded precisely when the surrounding operation is being rolled back, and
// it has to survive that rollback.
type ReconciliationRepository interface {
	// Add persists a new reconciliation flag.
	Add(ctx context.Context, flag *recon.Reconciliation) error

	// Update persists changes to an existing flag, e.g. resolution.
	Update(ctx context.Context, flag *recon.Reconciliation) error

	// GetAllUnresolved retrieves every flag still awaiting manual review.
	GetAllUnresolved(ctx context.Context) ([]*recon.Reconciliation, error)
}
