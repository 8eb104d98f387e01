package entity

import "time"

// CreativeProfile содержит данные владельца и рубрики.
type CreativeProfile struct {
	ID              int64
	UserID          int64
	Username        string
	FirstName       string
	LastName        string
	SubCategoryID   *int64
	SubCategoryName *string
	IndustryName    *string
	Bio             string
	HourlyRate      float64
	PortfolioURL    string
	IsVerified      bool
	CreatedAt       time.Time
}

func (p *CreativeProfile) IsOwnedBy(userID int64) bool {
	return p.UserID == userID
}
