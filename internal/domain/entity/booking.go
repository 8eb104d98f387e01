package entity

import "time"

// BookingParties содержит данные сторон, нужные для текста договора.
type BookingParties struct {
	BookingID        int64
	BookingDate      time.Time
	ClientID         int64
	ClientUsername   string
	CreativeUserID   int64
	CreativeUsername string
	HourlyRate       float64
}

func (p *BookingParties) IsParticipant(userID int64) bool {
	return userID == p.ClientID || userID == p.CreativeUserID
}
