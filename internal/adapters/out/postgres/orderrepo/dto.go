// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status, owner, and creation time.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Items           []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress  AddressDTO `gorm:"embedded;embeddedPrefix:billing_"`
	PaymentMethod   string     `gorm:"type:varchar(32);not null"`
	ShippingMethod  string     `gorm:"type:varchar(32);not null"`
	Subtotal        float64    `gorm:"type:numeric(12,2);not null"`
	ShippingCost    float64    `gorm:"type:numeric(12,2);not null"`
	Tax             float64    `gorm:"type:numeric(12,2);not null"`
	TotalAmount     float64    `gorm:"type:numeric(12,2);not null"`
	Status          int        `gorm:"type:int;not null;index"`
	PaymentStatus   int        `gorm:"type:int;not null"`
	TrackingNumber  string     `gorm:"type:varchar(64)"`
	Notes           string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded postal address within the order table.
// The same structure is embedded twice, once per address role.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(128);not null"`
	State      string `gorm:"type:varchar(128)"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Country    string `gorm:"type:varchar(64);not null"`
}

// ItemDTO represents a persisted order line item. Line numbers keep the item
// sequence stable, and together with the order id they form the primary key so
// updates upsert instead of duplicating rows.
type ItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNumber int       `gorm:"primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Price      float64   `gorm:"type:numeric(12,2);not null"`
	Quantity   int       `gorm:"type:int;not null"`
	Variant    string    `gorm:"type:varchar(128)"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:    orderID,
			LineNumber: i,
			ProductID:  item.ProductID().Bytes(),
			Name:       item.Name(),
			Price:      item.Price(),
			Quantity:   item.Quantity(),
			Variant:    item.Variant(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		UserID:          aggregate.UserID().Bytes(),
		Items:           items,
		ShippingAddress: addressFromDomain(aggregate.ShippingAddress()),
		BillingAddress:  addressFromDomain(aggregate.BillingAddress()),
		PaymentMethod:   string(aggregate.PaymentMethod()),
		ShippingMethod:  string(aggregate.ShippingMethod()),
		Subtotal:        aggregate.Subtotal(),
		ShippingCost:    aggregate.ShippingCost(),
		Tax:             aggregate.Tax(),
		TotalAmount:     aggregate.TotalAmount(),
		Status:          int(aggregate.Status()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		TrackingNumber:  aggregate.TrackingNumber(),
		Notes:           aggregate.Notes(),
	}
}

func addressFromDomain(a order.Address) AddressDTO {
	return AddressDTO{
		Street:     a.Street(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including both statuses using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].LineNumber < dto.Items[j].LineNumber
	})

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shippingAddress, err := addressToDomain(dto.ShippingAddress)
	if err != nil {
		return nil, err
	}

	billingAddress, err := addressToDomain(dto.BillingAddress)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		shippingAddress,
		billingAddress,
		order.PaymentMethod(dto.PaymentMethod),
		order.ShippingMethod(dto.ShippingMethod),
		order.Totals{
			Subtotal:     dto.Subtotal,
			ShippingCost: dto.ShippingCost,
			Tax:          dto.Tax,
			Total:        dto.TotalAmount,
		},
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.TrackingNumber,
		dto.Notes,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(productID, dto.Name, dto.Price, dto.Quantity, dto.Variant)
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	return order.NewAddress(dto.Street, dto.City, dto.State, dto.PostalCode, dto.Country)
}
