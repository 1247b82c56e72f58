package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler reads one order's summary straight from SQL.
// The display status is resolved from the scanned flags without rebuilding
// the aggregate; the priority table is shared with the domain.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the summary query for one order.
func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context,
	query GetOrderSummaryQuery) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	var id uuid.UUID
	var number, currency string
	var channelOrderID, trackingNumber, shippingCarrier sql.NullString
	var status, paymentStatus, fulfillmentStatus int
	var total, totalRefunded int64
	var orderDate time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			channel_order_id,
			status,
			payment_status,
			fulfillment_status,
			total,
			total_refunded,
			currency,
			tracking_number,
			shipping_carrier,
			order_date
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &number, &channelOrderID, &status, &paymentStatus, &fulfillmentStatus,
		&total, &totalRefunded, &currency, &trackingNumber, &shippingCarrier, &orderDate)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	totalMoney, err := kernel.NewMoney(total, currency)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	refundedMoney, err := kernel.NewMoney(totalRefunded, currency)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	refundable, err := totalMoney.Sub(refundedMoney)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	snapshot := order.StatusSnapshot{
		OrderStatus:       order.Status(status),
		PaymentStatus:     order.PaymentStatus(paymentStatus),
		FulfillmentStatus: order.FulfillmentStatus(fulfillmentStatus),
		Total:             totalMoney,
		TotalRefunded:     refundedMoney,
	}

	return GetOrderSummaryQueryResponse{
		ID:                orderID,
		Number:            number,
		ChannelOrderID:    channelOrderID.String,
		Status:            snapshot.OrderStatus,
		PaymentStatus:     snapshot.PaymentStatus,
		FulfillmentStatus: snapshot.FulfillmentStatus,
		DisplayStatus:     order.ResolveDisplayStatus(snapshot),
		Total:             totalMoney,
		TotalRefunded:     refundedMoney,
		RefundableAmount:  refundable,
		TrackingNumber:    trackingNumber.String,
		ShippingCarrier:   shippingCarrier.String,
		OrderDate:         orderDate,
	}, nil
}
