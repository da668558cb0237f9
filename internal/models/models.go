package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string          `gorm:"not null"                  json:"name"`
	Description string          `gorm:"not null;default:''"       json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Count       uint            `json:"count"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"unique;not null"          json:"email"`
	Username     string `gorm:"not null;default:''"      json:"username"`
	PasswordHash string `gorm:"not null;default:''"      json:"-"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type Order struct {
	ID           uint            `gorm:"primaryKey"                          json:"id"`
	UserID       *uint           `gorm:"index"                               json:"user_id"`
	ContactEmail *string         `                                           json:"contact_email"`
	ContactName  *string         `                                           json:"contact_name"`
	ContactPhone *string         `                                           json:"contact_phone"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(12,2);not null"         json:"subtotal"`
	Discount     decimal.Decimal `gorm:"type:numeric(12,2);not null"         json:"discount"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(12,2);not null"         json:"delivery_fee"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null"         json:"total"`
	Status       string          `gorm:"not null"                            json:"status"`
	Metadata     map[string]any  `gorm:"type:jsonb;serializer:json"          json:"metadata"`
	CreatedAt    time.Time       `gorm:"not null"                            json:"created_at"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID"                  json:"items,omitempty"`
}

type OrderItem struct {
	ID              uint            `gorm:"primaryKey"                     json:"id"`
	OrderID         uint            `gorm:"index;not null"                 json:"order_id"`
	ProductID       uint            `gorm:"not null"                       json:"product_id"`
	ProductName     string          `gorm:"not null"                       json:"product_name"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"    json:"unit_price"`
	Quantity        int             `gorm:"not null;check:quantity > 0"    json:"quantity"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"    json:"total_price"`
	SelectedOptions map[string]any  `gorm:"type:jsonb;serializer:json"     json:"selected_options,omitempty"`
}
