package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusInTransit  OrderStatus = "in_transit"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

// Tax and shipping rules applied to every order total.
const (
	TaxRate           = 0.08
	FreeShippingAbove = 50.0
	FlatShippingFee   = 9.99
)

type Order struct {
	OrderID         string      `gorm:"primaryKey;size:20" json:"order_id"`
	CustomerID      string      `gorm:"size:20;index" json:"customer_id"`
	OrderDate       time.Time   `json:"order_date"`
	Status          OrderStatus `gorm:"type:varchar(20);index" json:"status"`
	NumItems        int         `gorm:"type:int" json:"num_items"`
	Subtotal        float64     `gorm:"type:decimal(12,2)" json:"subtotal"`
	Tax             float64     `gorm:"type:decimal(12,2)" json:"tax"`
	Shipping        float64     `gorm:"type:decimal(12,2)" json:"shipping"`
	Total           float64     `gorm:"type:decimal(12,2)" json:"total"`
	PaymentMethod   string      `gorm:"size:30" json:"payment_method"`
	ShippingAddress string      `gorm:"size:255" json:"shipping_address"`
	// DeliveryDate is set only when Status is delivered.
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID     string  `gorm:"size:20;index" json:"order_id"`
	ProductID   string  `gorm:"size:20;index" json:"product_id"`
	ProductName string  `gorm:"size:180" json:"product_name"`
	Quantity    int     `gorm:"type:int" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(12,2)" json:"unit_price"`
	TotalPrice  float64 `gorm:"type:decimal(12,2)" json:"total_price"`
}
