package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is one of the five known states.
// There is no transition graph: any state may move to any other.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string      `gorm:"size:140;not null" json:"name"`
	Email         string      `gorm:"size:140" json:"email"`
	Phone         string      `gorm:"size:50" json:"phone"`
	NationalID    string      `gorm:"size:40" json:"nationalId"`
	StreetAddress string      `gorm:"size:255" json:"streetAddress"`
	City          string      `gorm:"size:100" json:"city"`
	PostalCode    string      `gorm:"size:20" json:"postalCode"`
	TotalAmount   float64     `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	Discount      float64     `gorm:"type:decimal(12,2);default:0" json:"discount"`
	Status        OrderStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	PromoCodeID   *uuid.UUID  `gorm:"type:uuid;index" json:"promoCodeId"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	Quantity int       `gorm:"not null" json:"quantity"`
	Price    float64   `gorm:"type:decimal(12,2);not null" json:"price"`

	// Weak reference: the product may be deleted after the sale, in which
	// case consumers render the item as unknown.
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"productId"`
	Product   *Product   `json:"product,omitempty"`
}
