package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/validation"
)

type ProductRepository interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	SetImage(ctx context.Context, id int64, path string) error
	Delete(ctx context.Context, id int64) error
	ListPackages(ctx context.Context, creativeID int64) ([]models.ServicePackage, error)
	CreatePackage(ctx context.Context, p *models.ServicePackage) error
}

// ImageStore сохраняет загруженные изображения; реализован storage.ImageStorage.
type ImageStore interface {
	Save(ctx context.Context, dir string, r io.Reader) (string, error)
	Delete(ctx context.Context, relativePath string) error
}

type ProductService struct {
	repo   ProductRepository
	images ImageStore
}

func NewProductService(repo ProductRepository, images ImageStore) *ProductService {
	return &ProductService{repo: repo, images: images}
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

type ProductInput struct {
	CreativeID  int64
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if in.CreativeID <= 0 {
		return nil, apperror.Validation("creative is required")
	}
	if in.Name == nil || in.Price == nil {
		return nil, apperror.Validation("name and price are required")
	}

	product := &models.Product{CreativeID: in.CreativeID}
	if err := applyProductInput(product, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProductInput(product, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func applyProductInput(p *models.Product, in ProductInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validation.ValidateLength("name", name, 1, validation.MaxTitleLength); err != nil {
			return err
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if err := validation.ValidatePrice("price", *in.Price); err != nil {
			return err
		}
		p.Price = models.Money(*in.Price)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return apperror.Validation("stock must not be negative")
		}
		p.Stock = *in.Stock
	}
	return nil
}

// Delete удаляет товар и его изображение. Ошибка удаления файла только логируется.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeImage(ctx, product.ImagePath)
	return nil
}

// UploadImage заменяет изображение товара.
func (s *ProductService) UploadImage(ctx context.Context, id int64, r io.Reader) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.images.Save(ctx, fmt.Sprintf("products/%d", id), r)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetImage(ctx, id, path); err != nil {
		s.removeImage(ctx, path)
		return nil, err
	}

	s.removeImage(ctx, product.ImagePath)
	product.ImagePath = path
	return product, nil
}

func (s *ProductService) removeImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.images.Delete(ctx, path); err != nil {
		logger.WithComponent("products").WithFields(logrus.Fields{"path": path}).WithError(err).Warn("не удалось удалить изображение")
	}
}

func (s *ProductService) ListPackages(ctx context.Context, creativeID int64) ([]models.ServicePackage, error) {
	return s.repo.ListPackages(ctx, creativeID)
}

type PackageInput struct {
	CreativeID   int64
	Name         string
	Description  string
	Price        float64
	DeliveryDays int
}

func (s *ProductService) CreatePackage(ctx context.Context, in PackageInput) (*models.ServicePackage, error) {
	if in.CreativeID <= 0 {
		return nil, apperror.Validation("creative is required")
	}
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateLength("name", name, 1, validation.MaxTitleLength); err != nil {
		return nil, err
	}
	if err := validation.ValidatePrice("price", in.Price); err != nil {
		return nil, err
	}
	if in.DeliveryDays == 0 {
		in.DeliveryDays = 1
	}
	if in.DeliveryDays < 0 {
		return nil, apperror.Validation("delivery_days must be positive")
	}

	pkg := &models.ServicePackage{
		CreativeID:   in.CreativeID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Price:        models.Money(in.Price),
		DeliveryDays: in.DeliveryDays,
	}
	if err := s.repo.CreatePackage(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}
