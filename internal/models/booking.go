package models

import "time"

type Booking struct {
	ID               int64     `db:"id" json:"id"`
	ClientID         int64     `db:"client_id" json:"client"`
	ClientUsername   string    `db:"client_username" json:"client_username"`
	CreativeID       int64     `db:"creative_id" json:"creative"`
	CreativeUsername string    `db:"creative_username" json:"creative_username"`
	BookingDate      Date      `db:"booking_date" json:"booking_date"`
	Requirements     string    `db:"requirements" json:"requirements"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// Нулевые значения BookingFilter не фильтруют.
type BookingFilter struct {
	ClientID       int64
	CreativeUserID int64
	Search         string
}
