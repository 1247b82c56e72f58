// Package reconrepo persists reconciliation flags for ambiguous external
// commits. The repository is deliberately non-transactional: a flag is
// written exactly when the operation that produced it is rolling back, so it
// always goes through the root database connection, never through a unit of
// work.
package reconrepo

import (
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/recon"

	"github.com/google/uuid"
)

// ReconciliationDTO represents the database structure for persisting
// reconciliation flags.
type ReconciliationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Gateway   string    `gorm:"type:varchar(64);not null"`
	Operation string    `gorm:"type:varchar(64);not null"`
	Details   string    `gorm:"type:text"`
	FlaggedAt time.Time `gorm:"not null;index"`
	Resolved  bool      `gorm:"not null;default:false"`
}

// TableName specifies the database table name for reconciliation flags.
func (ReconciliationDTO) TableName() string {
	return "reconciliations"
}

// fromDomain converts a reconciliation flag to its database representation.
func fromDomain(flag *recon.Reconciliation) ReconciliationDTO {
	return ReconciliationDTO{
		ID:        flag.ID().Bytes(),
		OrderID:   flag.OrderID().Bytes(),
		Gateway:   flag.Gateway(),
		Operation: flag.Operation(),
		Details:   flag.Details(),
		FlaggedAt: flag.FlaggedAt(),
		Resolved:  flag.IsResolved(),
	}
}

// toDomain converts a database DTO to a reconciliation flag.
func toDomain(dto ReconciliationDTO) (*recon.Reconciliation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return recon.RestoreReconciliation(id, orderID, dto.Gateway, dto.Operation,
		dto.Details, dto.FlaggedAt, dto.Resolved)
}
