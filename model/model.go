package model

import (
	"time"
)

var ALL_ORDER_TABLES []interface{} = []interface{}{
	Order{}, OrderDetail{},
}

type Order struct {
	ID         uint      `json:"id" gorm:"auto_increment;primary_key"`
	CustomerId uint      `json:"customer_id" gorm:"index;not null"`
	ProductId  uint      `json:"product_id" gorm:"index;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice float64   `json:"total_price" gorm:"type:decimal(10,2); not null"`
	CreatedAt  time.Time `json:"createdTime"`
	UpdatedAt  time.Time `json:"updatedTime"`
}

// OrderDetail captures the unit price at order-creation time. It is written
// once and never updated, so after an order update it keeps the original price.
type OrderDetail struct {
	ID        uint      `json:"id" gorm:"auto_increment;primary_key"`
	OrderId   uint      `json:"order_id" gorm:"index;not null"`
	ProductId uint      `json:"product_id" gorm:"index;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2); not null"`
	CreatedAt time.Time `json:"createdTime"`
	UpdatedAt time.Time `json:"updatedTime"`
}

type Payment struct {
	ID            uint      `json:"id" gorm:"auto_increment;primary_key"`
	OrderId       uint      `json:"order_id" gorm:"index;not null"`
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2); not null"`
	PaymentStatus string    `json:"payment_status" gorm:"not null"`
	PaymentMethod string    `json:"payment_method"`
	Timestamp     time.Time `json:"timestamp"`
}

// Product is the catalog representation. The catalog is a remote collaborator,
// there is no local products table.
type Product struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// OrderInfo is the external representation of an order. ProductPrice is the
// catalog price at read time, not the price the order was created with. The
// payment service decodes this same shape from the order service.
type OrderInfo struct {
	ID           uint    `json:"id"`
	CustomerId   uint    `json:"customerId"`
	ProductId    uint    `json:"productId"`
	Quantity     int     `json:"quantity"`
	ProductPrice float64 `json:"productPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}
