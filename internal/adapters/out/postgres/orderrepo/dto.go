// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository for the order aggregate,
// handling the conversion between the aggregate (order row, lines, refund
// ledger, cancellation history, shipment) and its relational representation.
package orderrepo

import (
	"time"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns hold minor units; the shared currency lives in one column
// because the aggregate is single-currency by construction.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"type:varchar(64);not null;uniqueIndex"`

	ChannelID      *uuid.UUID `gorm:"type:uuid;index"`
	ChannelOrderID *string    `gorm:"type:varchar(255)"`

	Subtotal      int64  `gorm:"type:bigint;not null"`
	ShippingCost  int64  `gorm:"type:bigint;not null"`
	Tax           int64  `gorm:"type:bigint;not null"`
	Discount      int64  `gorm:"type:bigint;not null"`
	Total         int64  `gorm:"type:bigint;not null"`
	TotalRefunded int64  `gorm:"type:bigint;not null"`
	Currency      string `gorm:"type:varchar(3);not null"`

	Status                   int     `gorm:"type:int;not null;index"`
	PaymentStatus            int     `gorm:"type:int;not null"`
	FulfillmentStatus        int     `gorm:"type:int;not null"`
	ReturnStatus             *string `gorm:"type:varchar(64)"`
	StatusBeforeCancellation int     `gorm:"type:int;not null"`

	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:ship_"`

	TrackingNumber  *string `gorm:"type:varchar(255)"`
	TrackingURL     *string `gorm:"type:varchar(1024)"`
	ShippingCarrier *string `gorm:"type:varchar(255)"`

	OrderDate               time.Time `gorm:"not null"`
	PaidAt                  *time.Time
	ShippedAt               *time.Time
	DeliveredAt             *time.Time
	CancellationRequestedAt *time.Time
	RefundInitiatedAt       *time.Time

	Items         []ItemDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Refunds       []RefundDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Cancellations []CancellationDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipment      *ShipmentDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping destination within the orders
// table.
type AddressDTO struct {
	Line1      string `gorm:"type:varchar(255);not null"`
	Line2      string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(255);not null"`
	Region     string `gorm:"type:varchar(255)"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Country    string `gorm:"type:varchar(2);not null"`
}

// ItemDTO represents one order line. Prices are checkout-time snapshots in
// minor units of the order currency.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Quantity   int       `gorm:"type:int;not null"`
	UnitPrice  int64     `gorm:"type:bigint;not null"`
	TotalPrice int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// RefundDTO represents one entry in the append-only refund ledger.
type RefundDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    int64     `gorm:"type:bigint;not null"`
	Kind      int       `gorm:"type:int;not null"`
	Dispatch  int       `gorm:"type:int;not null"`
	Reason    string    `gorm:"type:varchar(255);not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for refund ledger entries.
func (RefundDTO) TableName() string {
	return "refunds"
}

// CancellationDTO represents one entry in the cancellation history.
type CancellationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason      string    `gorm:"type:varchar(255);not null"`
	Requester   string    `gorm:"type:varchar(255)"`
	Status      int       `gorm:"type:int;not null"`
	RequestedAt time.Time `gorm:"not null"`
	ResolvedAt  *time.Time
	Resolver    string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for cancellation requests.
func (CancellationDTO) TableName() string {
	return "cancellation_requests"
}

// ShipmentDTO represents the order's single purchased shipment, with the
// package set frozen at purchase time in child rows.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CarrierID      string    `gorm:"type:varchar(255);not null"`
	ServiceCode    string    `gorm:"type:varchar(64);not null"`
	TrackingNumber string    `gorm:"type:varchar(255);not null"`
	LabelURL       string    `gorm:"type:varchar(1024)"`
	GeneratedAt    time.Time `gorm:"not null"`

	Packages []PackageDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PackageDTO represents one frozen parcel of a shipment. The (shipment, seq)
// composite key keeps re-saves of the parent idempotent.
type PackageDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"type:int;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"type:int;not null"`
	WeightKg   float64   `gorm:"type:numeric;not null"`
	LengthCm   float64   `gorm:"type:numeric;not null"`
	WidthCm    float64   `gorm:"type:numeric;not null"`
	HeightCm   float64   `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for shipment packages.
func (PackageDTO) TableName() string {
	return "shipment_packages"
}

// fromDomain converts an order aggregate to its database representation,
// including all child rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	address := aggregate.ShippingAddress()

	var channelID *uuid.UUID
	if aggregate.ChannelID() != nil {
		raw := aggregate.ChannelID().Bytes()
		channelID = &raw
	}
	var channelOrderID *string
	if aggregate.ChannelOrderID() != "" {
		raw := aggregate.ChannelOrderID()
		channelOrderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    orderID,
			ProductID:  item.ProductID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			TotalPrice: item.TotalPrice().Amount(),
		})
	}

	refunds := make([]RefundDTO, 0, len(aggregate.Refunds()))
	for _, r := range aggregate.Refunds() {
		refunds = append(refunds, RefundDTO{
			ID:        r.ID().Bytes(),
			OrderID:   orderID,
			Amount:    r.Amount().Amount(),
			Kind:      int(r.Kind()),
			Dispatch:  int(r.Dispatch()),
			Reason:    r.Reason(),
			Comment:   r.Comment(),
			CreatedAt: r.CreatedAt(),
		})
	}

	cancellations := make([]CancellationDTO, 0, len(aggregate.Cancellations()))
	for _, c := range aggregate.Cancellations() {
		cancellations = append(cancellations, CancellationDTO{
			ID:          c.ID().Bytes(),
			OrderID:     orderID,
			Reason:      c.Reason(),
			Requester:   c.Requester(),
			Status:      int(c.Status()),
			RequestedAt: c.RequestedAt(),
			ResolvedAt:  c.ResolvedAt(),
			Resolver:    c.Resolver(),
		})
	}

	var shipment *ShipmentDTO
	if aggregate.Shipment() != nil {
		shipment = shipmentFromDomain(aggregate.Shipment())
	}

	return OrderDTO{
		ID:             orderID,
		Number:         aggregate.Number(),
		ChannelID:      channelID,
		ChannelOrderID: channelOrderID,

		Subtotal:      aggregate.Subtotal().Amount(),
		ShippingCost:  aggregate.ShippingCost().Amount(),
		Tax:           aggregate.Tax().Amount(),
		Discount:      aggregate.Discount().Amount(),
		Total:         aggregate.Total().Amount(),
		TotalRefunded: aggregate.TotalRefunded().Amount(),
		Currency:      aggregate.Total().Currency(),

		Status:                   int(aggregate.Status()),
		PaymentStatus:            int(aggregate.PaymentStatus()),
		FulfillmentStatus:        int(aggregate.FulfillmentStatus()),
		ReturnStatus:             aggregate.ReturnStatus(),
		StatusBeforeCancellation: int(aggregate.StatusBeforeCancellation()),

		ShippingAddress: AddressDTO{
			Line1:      address.Line1(),
			Line2:      address.Line2(),
			City:       address.City(),
			Region:     address.Region(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},

		TrackingNumber:  aggregate.TrackingNumber(),
		TrackingURL:     aggregate.TrackingURL(),
		ShippingCarrier: aggregate.ShippingCarrier(),

		OrderDate:               aggregate.OrderDate(),
		PaidAt:                  aggregate.PaidAt(),
		ShippedAt:               aggregate.ShippedAt(),
		DeliveredAt:             aggregate.DeliveredAt(),
		CancellationRequestedAt: aggregate.CancellationRequestedAt(),
		RefundInitiatedAt:       aggregate.RefundInitiatedAt(),

		Items:         items,
		Refunds:       refunds,
		Cancellations: cancellations,
		Shipment:      shipment,
	}
}

func shipmentFromDomain(shipment *order.Shipment) *ShipmentDTO {
	shipmentID := shipment.ID().Bytes()

	packages := make([]PackageDTO, 0, len(shipment.Packages()))
	for i, p := range shipment.Packages() {
		packages = append(packages, PackageDTO{
			ShipmentID: shipmentID,
			Seq:        i,
			ItemID:     p.ItemID.Bytes(),
			Quantity:   p.Quantity,
			WeightKg:   p.WeightKg,
			LengthCm:   p.LengthCm,
			WidthCm:    p.WidthCm,
			HeightCm:   p.HeightCm,
		})
	}

	return &ShipmentDTO{
		ID:             shipmentID,
		OrderID:        shipment.OrderID().Bytes(),
		CarrierID:      shipment.CarrierID(),
		ServiceCode:    shipment.ServiceCode(),
		TrackingNumber: shipment.TrackingNumber(),
		LabelURL:       shipment.LabelURL(),
		GeneratedAt:    shipment.GeneratedAt(),
		Packages:       packages,
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate including all child rows using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var channelID *kernel.UUID
	if dto.ChannelID != nil {
		cID, chErr := kernel.UUIDFromBytes((*dto.ChannelID)[:])
		if chErr != nil {
			return nil, chErr
		}
		channelID = &cID
	}
	channelOrderID := ""
	if dto.ChannelOrderID != nil {
		channelOrderID = *dto.ChannelOrderID
	}

	money := func(amount int64) (kernel.Money, error) {
		return kernel.NewMoney(amount, dto.Currency)
	}

	subtotal, err := money(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	shippingCost, err := money(dto.ShippingCost)
	if err != nil {
		return nil, err
	}
	tax, err := money(dto.Tax)
	if err != nil {
		return nil, err
	}
	discount, err := money(dto.Discount)
	if err != nil {
		return nil, err
	}
	total, err := money(dto.Total)
	if err != nil {
		return nil, err
	}
	totalRefunded, err := money(dto.TotalRefunded)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.ShippingAddress.Line1,
		dto.ShippingAddress.Line2,
		dto.ShippingAddress.City,
		dto.ShippingAddress.Region,
		dto.ShippingAddress.PostalCode,
		dto.ShippingAddress.Country,
	)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto, dto.Currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	refunds := make([]order.RefundRecord, 0, len(dto.Refunds))
	for _, refundDto := range dto.Refunds {
		record, refundErr := refundToDomain(refundDto, dto.Currency)
		if refundErr != nil {
			return nil, refundErr
		}
		refunds = append(refunds, record)
	}

	cancellations := make([]order.CancellationRequest, 0, len(dto.Cancellations))
	for _, cancellationDto := range dto.Cancellations {
		request, cancellationErr := cancellationToDomain(cancellationDto)
		if cancellationErr != nil {
			return nil, cancellationErr
		}
		cancellations = append(cancellations, request)
	}

	var shipment *order.Shipment
	if dto.Shipment != nil {
		shipment, err = shipmentToDomain(*dto.Shipment)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:     id,
		Number: dto.Number,

		ChannelID:      channelID,
		ChannelOrderID: channelOrderID,

		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		Tax:           tax,
		Discount:      discount,
		Total:         total,
		TotalRefunded: totalRefunded,

		Status:                   order.Status(dto.Status),
		PaymentStatus:            order.PaymentStatus(dto.PaymentStatus),
		FulfillmentStatus:        order.FulfillmentStatus(dto.FulfillmentStatus),
		ReturnStatus:             dto.ReturnStatus,
		StatusBeforeCancellation: order.Status(dto.StatusBeforeCancellation),

		ShippingAddress: address,

		TrackingNumber:  dto.TrackingNumber,
		TrackingURL:     dto.TrackingURL,
		ShippingCarrier: dto.ShippingCarrier,

		OrderDate:               dto.OrderDate,
		PaidAt:                  dto.PaidAt,
		ShippedAt:               dto.ShippedAt,
		DeliveredAt:             dto.DeliveredAt,
		CancellationRequestedAt: dto.CancellationRequestedAt,
		RefundInitiatedAt:       dto.RefundInitiatedAt,

		Items:         items,
		Refunds:       refunds,
		Cancellations: cancellations,
		Shipment:      shipment,
	})
}

func itemToDomain(dto ItemDTO, currency string) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoney(dto.TotalPrice, currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.Name, dto.Quantity, unitPrice, totalPrice)
}

func refundToDomain(dto RefundDTO, currency string) (order.RefundRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.RefundRecord{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.RefundRecord{}, err
	}
	amount, err := kernel.NewMoney(dto.Amount, currency)
	if err != nil {
		return order.RefundRecord{}, err
	}

	return order.RestoreRefundRecord(id, orderID, amount, order.RefundKind(dto.Kind),
		order.DispatchTarget(dto.Dispatch), dto.Reason, dto.Comment, dto.CreatedAt)
}

func cancellationToDomain(dto CancellationDTO) (order.CancellationRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.CancellationRequest{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.CancellationRequest{}, err
	}

	return order.RestoreCancellationRequest(id, orderID, dto.Reason, dto.Requester,
		order.CancellationStatus(dto.Status), dto.RequestedAt, dto.ResolvedAt, dto.Resolver)
}

func shipmentToDomain(dto ShipmentDTO) (*order.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	packages := make([]order.Package, 0, len(dto.Packages))
	for _, packageDto := range dto.Packages {
		itemID, itemErr := kernel.UUIDFromBytes(packageDto.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		packages = append(packages, order.Package{
			ItemID:   itemID,
			Quantity: packageDto.Quantity,
			WeightKg: packageDto.WeightKg,
			LengthCm: packageDto.LengthCm,
			WidthCm:  packageDto.WidthCm,
			HeightCm: packageDto.HeightCm,
		})
	}

	return order.RestoreShipment(id, orderID, dto.CarrierID, dto.ServiceCode,
		dto.TrackingNumber, dto.LabelURL, packages, dto.GeneratedAt)
}
