package dto

import (
	"time"

	"github.com/ignatzorin/creative-marketplace/internal/domain/entity"
)

// SaveInterestsRequest: user_id проверяется в use case, чтобы отдать "User ID required".
type SaveInterestsRequest struct {
	UserID         int64   `json:"user_id"`
	SubcategoryIDs []int64 `json:"subcategory_ids"`
}

type CreativeProfileResponse struct {
	ID              int64     `json:"id"`
	User            int64     `json:"user"`
	Username        string    `json:"username"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	SubCategory     *int64    `json:"sub_category"`
	SubCategoryName *string   `json:"sub_category_name"`
	IndustryName    *string   `json:"industry_name"`
	Bio             string    `json:"bio"`
	HourlyRate      string    `json:"hourly_rate"`
	PortfolioURL    string    `json:"portfolio_url"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToCreativeProfileResponse(p *entity.CreativeProfile) CreativeProfileResponse {
	return CreativeProfileResponse{
		ID:              p.ID,
		User:            p.UserID,
		Username:        p.Username,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		SubCategory:     p.SubCategoryID,
		SubCategoryName: p.SubCategoryName,
		IndustryName:    p.IndustryName,
		Bio:             p.Bio,
		HourlyRate:      FormatMoney(p.HourlyRate),
		PortfolioURL:    p.PortfolioURL,
		IsVerified:      p.IsVerified,
		CreatedAt:       p.CreatedAt,
	}
}

func ToCreativeProfileResponses(profiles []*entity.CreativeProfile) []CreativeProfileResponse {
	result := make([]CreativeProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, ToCreativeProfileResponse(p))
	}
	return result
}
