package models

import "time"

type Product struct {
	ID          int64     `db:"id" json:"id"`
	CreativeID  int64     `db:"creative_id" json:"creative"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       Money     `db:"price" json:"price"`
	Stock       int       `db:"stock" json:"stock"`
	ImagePath   string    `db:"image_path" json:"image"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ProductFilter struct {
	CreativeID int64
	Search     string
}

type ServicePackage struct {
	ID           int64     `db:"id" json:"id"`
	CreativeID   int64     `db:"creative_id" json:"creative"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Price        Money     `db:"price" json:"price"`
	DeliveryDays int       `db:"delivery_days" json:"delivery_days"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
