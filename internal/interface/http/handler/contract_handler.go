package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/dto"
	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
	"github.com/ignatzorin/creative-marketplace/internal/usecase/contract"
)

type ContractHandler struct {
	getOrCreateUC *contract.GetOrCreateContractUseCase
	signUC        *contract.SignContractUseCase
}

func NewContractHandler(getOrCreateUC *contract.GetOrCreateContractUseCase, signUC *contract.SignContractUseCase) *ContractHandler {
	return &ContractHandler{
		getOrCreateUC: getOrCreateUC,
		signUC:        signUC,
	}
}

// GetByBooking обрабатывает GET /api/contract/booking/:booking_id/.
func (h *ContractHandler) GetByBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "booking_id")
	if !ok {
		response.Error(c, apperror.ErrBookingNotFound)
		return
	}

	result, err := h.getOrCreateUC.Execute(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToContractResponse(result))
}

// Sign обрабатывает POST /api/contract/sign/:contract_id/.
func (h *ContractHandler) Sign(c *gin.Context) {
	contractID, ok := parseIDParam(c, "contract_id")
	if !ok {
		response.Error(c, apperror.ErrContractNotFound)
		return
	}

	var req dto.SignContractRequest
	// Пустое или битое тело даёт пустую роль, а это no-op.
	_ = c.ShouldBindJSON(&req)

	if err := h.signUC.Execute(c.Request.Context(), contractID, req.Role); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Contract signed successfully")
}
