package dto

import (
	"strconv"
	"time"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
)

type SignContractRequest struct {
	Role string `json:"role"`
}

type ContractResponse struct {
	ID               int64      `json:"id"`
	Booking          int64      `json:"booking"`
	BodyText         string     `json:"body_text"`
	IsClientSigned   bool       `json:"is_client_signed"`
	ClientSignedAt   *time.Time `json:"client_signed_at"`
	IsCreativeSigned bool       `json:"is_creative_signed"`
	CreativeSignedAt *time.Time `json:"creative_signed_at"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}

func ToContractResponse(c *entity.Contract) ContractResponse {
	return ContractResponse{
		ID:               c.ID,
		Booking:          c.BookingID,
		BodyText:         c.BodyText,
		IsClientSigned:   c.IsClientSigned,
		ClientSignedAt:   c.ClientSignedAt,
		IsCreativeSigned: c.IsCreativeSigned,
		CreativeSignedAt: c.CreativeSignedAt,
		Status:           string(c.State()),
		CreatedAt:        c.CreatedAt,
	}
}

// FormatMoney отдаёт денежные суммы строкой с двумя знаками, как NUMERIC(10,2).
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
