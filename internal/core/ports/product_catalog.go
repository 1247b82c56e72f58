package ports

import (
	"context"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
)

// ProductCatalog defines the read-only contract to the catalog collaborator
// that knows product default weights and dimensions.
type ProductCatalog interface {
	// GetDimensions returns default dimensions keyed by product ID.
	// Products unknown to the catalog are simply absent from the result.
	GetDimensions(ctx context.Context, productIDs []kernel.UUID) (map[kernel.UUID]order.Dimensions, error)
}
