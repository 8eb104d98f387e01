package entity

import (
	"strings"
	"time"

	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

// BodyText договора фиксируется при создании и больше не меняется.
type Contract struct {
	ID               int64
	BookingID        int64
	BodyText         string
	IsClientSigned   bool
	ClientSignedAt   *time.Time
	IsCreativeSigned bool
	CreativeSignedAt *time.Time
	CreatedAt        time.Time
}

func NewContract(bookingID int64, bodyText string, now time.Time) (*Contract, error) {
	if bookingID <= 0 {
		return nil, apperror.Validation("booking id must be positive")
	}
	if strings.TrimSpace(bodyText) == "" {
		return nil, apperror.Validation("contract body must not be empty")
	}

	return &Contract{
		BookingID: bookingID,
		BodyText:  bodyText,
		CreatedAt: now,
	}, nil
}

// Sign ставит подпись стороны и время. Повторная подпись обновляет время.
func (c *Contract) Sign(role valueobject.SignerRole, at time.Time) bool {
	switch role {
	case valueobject.SignerRoleClient:
		c.IsClientSigned = true
		c.ClientSignedAt = &at
	case valueobject.SignerRoleCreative:
		c.IsCreativeSigned = true
		c.CreativeSignedAt = &at
	default:
		return false
	}
	return true
}

func (c *Contract) State() valueobject.ContractState {
	return valueobject.ContractStateOf(c.IsClientSigned, c.IsCreativeSigned)
}

func (c *Contract) IsFullySigned() bool {
	return c.IsClientSigned && c.IsCreativeSigned
}
