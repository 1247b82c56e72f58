package ports

import (
	"context"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
)

// ChannelGateway defines the outbound contract to the external sales channel
// that owns a channel-linked order's canonical record. Local refund and
// cancellation mutations must be mirrored there before they are committed.
//
// Implementations exist in two forms: an HTTP adapter for channel-linked
// orders and a local no-op for orders with no external record. Callers select
// by the order's channel linkage and never branch on channel identity
// themselves.
type ChannelGateway interface {
	// Refund submits a refund for the channel's copy of the order.
	Refund(ctx context.Context, channelOrderID string, amount kernel.Money, reason, comment string) error

	// ApproveCancellation confirms a cancellation with the channel.
	ApproveCancellation(ctx context.Context, channelOrderID string) error

	// RejectCancellation declines a cancellation with the channel.
	RejectCancellation(ctx context.Context, channelOrderID string, reason string) error
}
