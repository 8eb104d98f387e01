package valueobject

import "github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusDeclined, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func NewBookingStatus(status string) (BookingStatus, error) {
	s := BookingStatus(status)
	if !s.IsValid() {
		return "", apperror.Validation("invalid booking status")
	}
	return s, nil
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func NewOrderStatus(status string) (OrderStatus, error) {
	s := OrderStatus(status)
	if !s.IsValid() {
		return "", apperror.Validation("invalid order status")
	}
	return s, nil
}

type UserRole string

const (
	UserRoleClient   UserRole = "client"
	UserRoleCreative UserRole = "creative"
	UserRoleAdmin    UserRole = "admin"
)

// NewUserRole допускает только роли, доступные при самостоятельной регистрации.
func NewUserRole(role string) (UserRole, error) {
	switch UserRole(role) {
	case "":
		return UserRoleClient, nil
	case UserRoleClient, UserRoleCreative:
		return UserRole(role), nil
	}
	return "", apperror.Validation("role must be client or creative")
}
