package order

import "github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"

// Dimensions are the default weight and size of a single product unit, as
// recorded in the catalog. A zero field means the catalog has no value for it.
type Dimensions struct {
	WeightKg float64
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// DimensionOverride is a caller-supplied replacement for an item's catalog
// dimensions. A field wins over the catalog default only when it is > 0.
//
// The merged package set is a pure function of (items, defaults, overrides),
// so the label purchase can recompute exactly the package set the rate quote
// was issued for; the quote itself is never persisted.
type DimensionOverride struct {
	ItemID   kernel.UUID
	WeightKg float64
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Package is one parcel in the package set sent to the carrier: the merged
// dimensions for one order line. A shipment freezes the package set it was
// purchased with.
type Package struct {
	ItemID   kernel.UUID
	Quantity int
	WeightKg float64
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}
