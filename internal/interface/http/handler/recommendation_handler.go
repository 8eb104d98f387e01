package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/dto"
	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/usecase/recommendation"
)

type RecommendationHandler struct {
	saveInterestsUC *recommendation.SaveInterestsUseCase
	recommendedUC   *recommendation.RecommendedCreativesUseCase
}

func NewRecommendationHandler(
	saveInterestsUC *recommendation.SaveInterestsUseCase,
	recommendedUC *recommendation.RecommendedCreativesUseCase,
) *RecommendationHandler {
	return &RecommendationHandler{
		saveInterestsUC: saveInterestsUC,
		recommendedUC:   recommendedUC,
	}
}

// SaveInterests обрабатывает POST /api/save-interests/.
func (h *RecommendationHandler) SaveInterests(c *gin.Context) {
	var req dto.SaveInterestsRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		response.Error(c, bindInterestsError(c))
		return
	}

	err := h.saveInterestsUC.Execute(c.Request.Context(), recommendation.SaveInterestsInput{
		UserID:         req.UserID,
		SubcategoryIDs: req.SubcategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Interests saved successfully")
}

// Recommended обрабатывает GET /api/creatives/recommended/?user_id=.
// Без user_id отдаёт пустой список.
func (h *RecommendationHandler) Recommended(c *gin.Context) {
	profiles, err := h.recommendedUC.Execute(c.Request.Context(), parseInt64Query(c, "user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCreativeProfileResponses(profiles))
}

// bindInterestsError различает отсутствующий user_id и неверный список подкатегорий.
func bindInterestsError(c *gin.Context) error {
	var owner struct {
		UserID int64 `json:"user_id"`
	}
	if err := c.ShouldBindBodyWith(&owner, binding.JSON); err != nil || owner.UserID == 0 {
		return apperror.ErrUserIDRequired
	}
	return apperror.ErrSubcategoryIDsInvalid
}
