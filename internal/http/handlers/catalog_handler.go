package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/service"
)

// CatalogHandler: отрасли, подкатегории, профили исполнителей и модерация.
type CatalogHandler struct {
	creatives *service.CreativeService
}

func NewCatalogHandler(creatives *service.CreativeService) *CatalogHandler {
	return &CatalogHandler{creatives: creatives}
}

// ListIndustries обрабатывает GET /api/industries/?search=.
func (h *CatalogHandler) ListIndustries(c *gin.Context) {
	industries, err := h.creatives.ListIndustries(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if industries == nil {
		industries = []models.IndustryCategory{}
	}
	response.Success(c, industries)
}

// ListSubcategories обрабатывает GET /api/subcategories/?industry_id=&search=.
func (h *CatalogHandler) ListSubcategories(c *gin.Context) {
	subcategories, err := h.creatives.ListSubcategories(c.Request.Context(), queryInt64(c, "industry_id"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if subcategories == nil {
		subcategories = []models.SubCategory{}
	}
	response.Success(c, subcategories)
}

// ListCreatives обрабатывает GET /api/creatives/: только проверенные профили.
func (h *CatalogHandler) ListCreatives(c *gin.Context) {
	profiles, err := h.creatives.ListVerified(c.Request.Context(), queryInt64(c, "subcategory_id"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondProfiles(c, profiles)
}

type createProfileRequest struct {
	User         int64         `json:"user"`
	SubCategory  *int64        `json:"sub_category"`
	Bio          string        `json:"bio"`
	HourlyRate   *models.Money `json:"hourly_rate"`
	PortfolioURL string        `json:"portfolio_url"`
}

// CreateProfile обрабатывает POST /api/create-profile/.
func (h *CatalogHandler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.HourlyRate == nil {
		response.BadRequest(c, "hourly_rate is required")
		return
	}

	profile, created, err := h.creatives.CreateProfile(c.Request.Context(), service.CreateProfileInput{
		UserID:        req.User,
		SubCategoryID: req.SubCategory,
		Bio:           req.Bio,
		HourlyRate:    float64(*req.HourlyRate),
		PortfolioURL:  req.PortfolioURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Profile already exists", "status": "exists"})
		return
	}

	response.Created(c, profile)
}

// GetProfileByUser обрабатывает GET /api/creative-profile/?user_id=.
func (h *CatalogHandler) GetProfileByUser(c *gin.Context) {
	profile, err := h.creatives.GetByUserID(c.Request.Context(), queryInt64(c, "user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// ListPending обрабатывает GET /api/admin/pending-creatives/.
func (h *CatalogHandler) ListPending(c *gin.Context) {
	profiles, err := h.creatives.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondProfiles(c, profiles)
}

type moderateRequest struct {
	Action string `json:"action"`
}

// Moderate обрабатывает POST /api/admin/manage-creative/:id/.
func (h *CatalogHandler) Moderate(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrProfileNotFound)
	if !ok {
		return
	}

	var req moderateRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.creatives.Moderate(c.Request.Context(), id, req.Action); err != nil {
		response.Error(c, err)
		return
	}

	if req.Action == service.ModerationApprove {
		response.Message(c, "Creative approved")
		return
	}
	response.Message(c, "Creative rejected")
}

func respondProfiles(c *gin.Context, profiles []models.CreativeProfile) {
	if profiles == nil {
		profiles = []models.CreativeProfile{}
	}
	response.Success(c, profiles)
}
