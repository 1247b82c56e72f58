package order

import (
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/core/domain/model/kernel"
	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem or RestoreItem")

// Item is an order line: a product reference, a quantity, and the prices
// captured at checkout time. Prices are snapshots; catalog changes after
// checkout never alter an existing order line.
type Item struct {
	id         kernel.UUID
	productID  kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
	totalPrice kernel.Money
}

// NewItem creates a validated order line. The total price is derived from
// quantity and unit price.
func NewItem(id kernel.UUID, productID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 1000)
	}
	if err := unitPrice.Validate(); err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(unitPrice.Amount()*int64(quantity), unitPrice.Currency())
	if err != nil {
		return nil, err
	}

	return &Item{
		id:         id,
		productID:  productID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
	}, nil
}

// RestoreItem reconstructs an Item from persistence without re-deriving the
// total price, preserving whatever was stored at checkout.
func RestoreItem(id kernel.UUID, productID kernel.UUID, name string, quantity int,
	unitPrice kernel.Money, totalPrice kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if err := unitPrice.Validate(); err != nil {
		return nil, err
	}
	if err := totalPrice.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:         id,
		productID:  productID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
	}, nil
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// ProductID returns the catalog product this line references.
func (i *Item) ProductID() kernel.UUID { return i.productID }

// Name returns the product name captured at checkout.
func (i *Item) Name() string { return i.name }

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the per-unit price captured at checkout.
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// TotalPrice returns the line total captured at checkout.
func (i *Item) TotalPrice() kernel.Money { return i.totalPrice }

// Validate checks if the Item is properly constructed.
func (i *Item) Validate() error {
	if i == nil || i.quantity == 0 {
		return ErrItemIsNotConstructed
	}
	return nil
}
