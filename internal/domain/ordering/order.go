package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// PaymentStatus is the three-state payment flag on an order
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusComplete PaymentStatus = "complete"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// IsValid reports whether the value is one of the known statuses
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusComplete, PaymentStatusFailed:
		return true
	}
	return false
}

// Order is a placed order. Its lines carry unit prices snapshotted at
// placement time; later catalog price changes never affect an order.
type Order struct {
	shared.BaseAggregateRoot
	CustomerID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order for a customer
func NewOrder(customerID uuid.UUID) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Order customer is required")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		PaymentStatus:     PaymentStatusPending,
	}, nil
}

// AddLine appends a line with the product's current unit price frozen in
func (o *Order) AddLine(productID uuid.UUID, quantity int, unitPrice valueobject.Money) error {
	item, err := NewOrderItem(o.ID, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()

	return nil
}

// SetPaymentStatus assigns the payment status directly. Any of the three
// values may follow any other; no transition graph is enforced.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_STATUS", "Payment status must be pending, complete or failed")
	}

	o.PaymentStatus = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Total returns the order total from the snapshotted line prices
func (o *Order) Total() valueobject.Money {
	total := valueobject.ZeroUSD()
	for _, item := range o.Items {
		total = total.MustAdd(item.LineTotal())
	}
	return total
}

// OrderItem is an immutable order line. UnitPrice is the product's price
// at the moment the order was placed.
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates an order line with a frozen unit price
func NewOrderItem(orderID, productID uuid.UUID, quantity int, unitPrice valueobject.Money) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Order line product is required")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if !unitPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}

	return &OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice.Amount(),
	}, nil
}

// LineTotal returns quantity times the snapshotted unit price
func (i *OrderItem) LineTotal() valueobject.Money {
	return valueobject.NewMoneyUSD(i.UnitPrice).MultiplyByInt(int64(i.Quantity))
}
