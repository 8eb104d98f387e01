package models

import "time"

// CreativeProfile отдаётся вместе с данными владельца и рубрики.
type CreativeProfile struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user"`
	Username        string    `db:"username" json:"username"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	SubCategoryID   *int64    `db:"sub_category_id" json:"sub_category"`
	SubCategoryName *string   `db:"sub_category_name" json:"sub_category_name"`
	IndustryName    *string   `db:"industry_name" json:"industry_name"`
	Bio             string    `db:"bio" json:"bio"`
	HourlyRate      Money     `db:"hourly_rate" json:"hourly_rate"`
	PortfolioURL    string    `db:"portfolio_url" json:"portfolio_url"`
	IsVerified      bool      `db:"is_verified" json:"is_verified"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
