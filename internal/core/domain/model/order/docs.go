// Package order contains the Order aggregate and its owned entities: items,
// append-only refund records, cancellation requests, and the optional 1:1
// shipment created by label purchase.
//
// The aggregate is the only place the post-purchase invariants are enforced:
//
//   - 0 <= total_refunded <= total, with the refund ledger summing exactly to
//     total_refunded on every write
//   - at most one shipment per order, and manual shipping is mutually
//     exclusive with a purchased label
//   - at most one open cancellation request, with the pre-request status
//     persisted for exact restoration on rejection
//
// Order, payment, and fulfillment status are independently settable flags;
// the single human-facing status is derived from them by ResolveDisplayStatus,
// an explicit ordered priority table.
package order
