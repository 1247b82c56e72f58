package reconrepo

import (
	"context"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/recon"

	"gorm.io/gorm"
)

// GormReconciliationRepository implements ReconciliationRepository using GORM.
// Construct it with the root database connection so writes commit
// independently of any order transaction in flight.
type GormReconciliationRepository struct {
	db *gorm.DB
}

// NewGormReconciliationRepository creates a new GORM reconciliation repository.
func NewGormReconciliationRepository(db *gorm.DB) *GormReconciliationRepository {
	return &GormReconciliationRepository{db: db}
}

// Add saves a new reconciliation flag to the database.
func (r *GormReconciliationRepository) Add(ctx context.Context, flag *recon.Reconciliation) error {
	if err := flag.Validate(); err != nil {
		return err
	}

	dto := fromDomain(flag)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing flag. Updates go through a column map
// because GORM's struct updates skip zero values and Resolved is a bool.
func (r *GormReconciliationRepository) Update(ctx context.Context, flag *recon.Reconciliation) error {
	if err := flag.Validate(); err != nil {
		return err
	}

	dto := fromDomain(flag)
	result := r.db.WithContext(ctx).
		Model(&ReconciliationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"details":  dto.Details,
			"resolved": dto.Resolved,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetAllUnresolved retrieves every flag still awaiting manual review,
// oldest first.
func (r *GormReconciliationRepository) GetAllUnresolved(ctx context.Context) ([]*recon.Reconciliation, error) {
	var dtos []ReconciliationDTO
	if err := r.db.WithContext(ctx).
		Where("resolved = ?", false).
		Order("flagged_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	flags := make([]*recon.Reconciliation, 0, len(dtos))
	for _, dto := range dtos {
		flag, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}

	return flags, nil
}
