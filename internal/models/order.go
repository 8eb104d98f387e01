package models

import "time"

// TotalPrice считается при создании заказа и больше не пересчитывается.
type Order struct {
	ID              int64     `db:"id" json:"id"`
	ProductID       int64     `db:"product_id" json:"product"`
	ProductName     string    `db:"product_name" json:"product_name"`
	ClientID        int64     `db:"client_id" json:"client"`
	Quantity        int       `db:"quantity" json:"quantity"`
	TotalPrice      Money     `db:"total_price" json:"total_price"`
	ShippingAddress string    `db:"shipping_address" json:"shipping_address"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type OrderFilter struct {
	ClientID       int64
	CreativeUserID int64
}
