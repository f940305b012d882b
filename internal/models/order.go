package models

import "time"

// OrderStatus es el estado de un pedido
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem es un producto dentro de un pedido
type OrderItem struct {
	ProductID int64  `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Price     int64  `json:"price" binding:"gte=0"`
}

// Order representa un pedido de un usuario
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId" binding:"required"`
	Items     []OrderItem `json:"items" binding:"required,min=1,dive"`
	Total     int64       `json:"total" binding:"gte=0"`
	Status    OrderStatus `json:"status" binding:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	CreatedAt time.Time   `json:"createdAt"`
}
