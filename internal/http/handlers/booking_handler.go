package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/models"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/service"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	Client       int64       `json:"client" binding:"required,gt=0"`
	Creative     int64       `json:"creative" binding:"required,gt=0"`
	BookingDate  models.Date `json:"booking_date"`
	Requirements string      `json:"requirements"`
}

// Create обрабатывает POST /api/bookings/.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), service.CreateBookingInput{
		ClientID:     req.Client,
		CreativeID:   req.Creative,
		BookingDate:  req.BookingDate,
		Requirements: req.Requirements,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, booking)
}

// List обрабатывает GET /api/my-bookings/?client_id=&creative_user_id=&search=.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context(), models.BookingFilter{
		ClientID:       queryInt64(c, "client_id"),
		CreativeUserID: queryInt64(c, "creative_user_id"),
		Search:         c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	response.Success(c, bookings)
}

// Get обрабатывает GET /api/bookings/:id/.
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrBookingNotFound)
	if !ok {
		return
	}

	booking, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, booking)
}

type updateBookingRequest struct {
	BookingDate  *models.Date `json:"booking_date"`
	Requirements *string      `json:"requirements"`
	Status       *string      `json:"status"`
}

// Update обрабатывает PUT и PATCH /api/bookings/:id/. PUT требует booking_date.
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrBookingNotFound)
	if !ok {
		return
	}

	var req updateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	if c.Request.Method == http.MethodPut && req.BookingDate == nil {
		response.BadRequest(c, "booking_date is required")
		return
	}

	booking, err := h.bookings.Update(c.Request.Context(), id, service.UpdateBookingInput{
		BookingDate:  req.BookingDate,
		Requirements: req.Requirements,
		Status:       req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, booking)
}

// Delete обрабатывает DELETE /api/bookings/:id/.
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, apperror.ErrBookingNotFound)
	if !ok {
		return
	}

	if err := h.bookings.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
