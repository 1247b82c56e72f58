package services

import (
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
)

// PackageResolver merges catalog-default dimensions with caller-supplied
// overrides into the package set sent to a carrier.
//
// Resolve is a pure function of its inputs. The shipping flow depends on
// that: the rate quote is never persisted, so the label purchase re-resolves
// the package set from the same overrides and must arrive at exactly the same
// parcels the quote was issued for.
type PackageResolver struct{}

// NewPackageResolver creates a PackageResolver.
func NewPackageResolver() *PackageResolver {
	return &PackageResolver{}
}

// Resolve builds one package per order line. For each dimension the override
// wins when present and > 0, else the catalog default applies, else zero.
func (r *PackageResolver) Resolve(items []*order.Item, defaults map[kernel.UUID]order.Dimensions,
	overrides []order.DimensionOverride) []order.Package {
	overrideByItem := make(map[kernel.UUID]order.DimensionOverride, len(overrides))
	for _, override := range overrides {
		overrideByItem[override.ItemID] = override
	}

	packages := make([]order.Package, 0, len(items))
	for _, item := range items {
		defaultDims := defaults[item.ProductID()]
		override := overrideByItem[item.ID()]

		packages = append(packages, order.Package{
			ItemID:   item.ID(),
			Quantity: item.Quantity(),
			WeightKg: pick(override.WeightKg, defaultDims.WeightKg),
			LengthCm: pick(override.LengthCm, defaultDims.LengthCm),
			WidthCm:  pick(override.WidthCm, defaultDims.WidthCm),
			HeightCm: pick(override.HeightCm, defaultDims.HeightCm),
		})
	}
	return packages
}

func pick(override, fallback float64) float64 {
	if override > 0 {
		return override
	}
	if fallback > 0 {
		return fallback
	}
	return 0
}
