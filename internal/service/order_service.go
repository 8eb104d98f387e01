package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/domain/valueobject"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	Update(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, id int64) error
}

// OrderService не проводит оплату, статус заказа меняется вручную.
type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

type CreateOrderInput struct {
	ProductID       int64
	ClientID        int64
	Quantity        int
	ShippingAddress string
}

// Create: total_price считает хранилище по текущей цене товара.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.ProductID <= 0 || in.ClientID <= 0 {
		return nil, apperror.Validation("product and client are required")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 0 {
		return nil, apperror.Validation("quantity must be positive")
	}

	order := &models.Order{
		ProductID:       in.ProductID,
		ClientID:        in.ClientID,
		Quantity:        in.Quantity,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		Status:          string(valueobject.OrderStatusPending),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.WithComponent("orders").WithFields(logrus.Fields{
		"order_id":    order.ID,
		"product_id":  order.ProductID,
		"total_price": float64(order.TotalPrice),
	}).Info("заказ создан")
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	return s.repo.List(ctx, filter)
}

type UpdateOrderInput struct {
	Status          *string
	ShippingAddress *string
}

func (s *OrderService) Update(ctx context.Context, id int64, in UpdateOrderInput) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		status, err := valueobject.NewOrderStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		order.Status = string(status)
	}
	if in.ShippingAddress != nil {
		order.ShippingAddress = strings.TrimSpace(*in.ShippingAddress)
	}
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
