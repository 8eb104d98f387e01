package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/repository"
	"github.com/ignatzorin/creative-marketplace/internal/validation"
)

type CatalogRepository interface {
	ListIndustries(ctx context.Context, search string) ([]models.IndustryCategory, error)
	ListSubcategories(ctx context.Context, industryID int64, search string) ([]models.SubCategory, error)
}

type CreativeRepository interface {
	List(ctx context.Context, filter repository.CreativeFilter) ([]models.CreativeProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*models.CreativeProfile, error)
	Create(ctx context.Context, profile *models.CreativeProfile) error
	SetVerified(ctx context.Context, id int64, verified bool) error
}

// CreativeService: каталог, профили исполнителей и модерация.
type CreativeService struct {
	catalog   CatalogRepository
	creatives CreativeRepository
}

func NewCreativeService(catalog CatalogRepository, creatives CreativeRepository) *CreativeService {
	return &CreativeService{catalog: catalog, creatives: creatives}
}

func (s *CreativeService) ListIndustries(ctx context.Context, search string) ([]models.IndustryCategory, error) {
	return s.catalog.ListIndustries(ctx, search)
}

func (s *CreativeService) ListSubcategories(ctx context.Context, industryID int64, search string) ([]models.SubCategory, error) {
	return s.catalog.ListSubcategories(ctx, industryID, search)
}

// ListVerified отдаёт только проверенных исполнителей.
func (s *CreativeService) ListVerified(ctx context.Context, subCategoryID int64, search string) ([]models.CreativeProfile, error) {
	verified := true
	return s.creatives.List(ctx, repository.CreativeFilter{
		Verified:      &verified,
		SubCategoryID: subCategoryID,
		Search:        search,
	})
}

func (s *CreativeService) ListPending(ctx context.Context) ([]models.CreativeProfile, error) {
	verified := false
	return s.creatives.List(ctx, repository.CreativeFilter{Verified: &verified})
}

func (s *CreativeService) GetByUserID(ctx context.Context, userID int64) (*models.CreativeProfile, error) {
	if userID <= 0 {
		return nil, apperror.ErrUserIDRequired
	}
	return s.creatives.GetByUserID(ctx, userID)
}

type CreateProfileInput struct {
	UserID        int64
	SubCategoryID *int64
	Bio           string
	HourlyRate    float64
	PortfolioURL  string
}

// CreateProfile создаёт непроверенный профиль. Если профиль уже есть, возвращает
// его и created=false.
func (s *CreativeService) CreateProfile(ctx context.Context, in CreateProfileInput) (*models.CreativeProfile, bool, error) {
	if in.UserID <= 0 {
		return nil, false, apperror.ErrUserIDRequired
	}

	existing, err := s.creatives.GetByUserID(ctx, in.UserID)
	if err == nil {
		return existing, false, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, false, err
	}

	in.PortfolioURL = strings.TrimSpace(in.PortfolioURL)
	if err := validation.ValidateHourlyRate(in.HourlyRate); err != nil {
		return nil, false, err
	}
	if err := validation.ValidatePortfolioURL(in.PortfolioURL); err != nil {
		return nil, false, err
	}
	if err := validation.ValidateLength("bio", in.Bio, 0, validation.MaxBioLength); err != nil {
		return nil, false, err
	}

	profile := &models.CreativeProfile{
		UserID:        in.UserID,
		SubCategoryID: in.SubCategoryID,
		Bio:           strings.TrimSpace(in.Bio),
		HourlyRate:    models.Money(in.HourlyRate),
		PortfolioURL:  in.PortfolioURL,
	}
	if err := s.creatives.Create(ctx, profile); err != nil {
		if apperror.IsConflict(err) {
			// Параллельный запрос успел создать профиль.
			existing, getErr := s.creatives.GetByUserID(ctx, in.UserID)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return profile, true, nil
}

const (
	ModerationApprove = "approve"
	ModerationReject  = "reject"
)

// Moderate: approve делает профиль проверенным, reject снимает проверку.
func (s *CreativeService) Moderate(ctx context.Context, profileID int64, action string) error {
	var verified bool
	switch action {
	case ModerationApprove:
		verified = true
	case ModerationReject:
		verified = false
	default:
		return apperror.Validation("Invalid action")
	}

	if err := s.creatives.SetVerified(ctx, profileID, verified); err != nil {
		return err
	}

	logger.WithComponent("admin").WithFields(logrus.Fields{
		"profile_id": profileID,
		"action":     action,
	}).Info("профиль исполнителя промодерирован")
	return nil
}
