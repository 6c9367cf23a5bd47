package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/service"
	"github.com/barisbulutdemir/raporermak/pkg/response"
)

// CalculationHandler serves the preview endpoint.
type CalculationHandler struct {
	calcSvc service.CalculationService
}

// NewCalculationHandler builds the CalculationHandler.
func NewCalculationHandler(calcSvc service.CalculationService) *CalculationHandler {
	return &CalculationHandler{calcSvc: calcSvc}
}

// Preview classifies a date range without saving anything.
// POST /api/v1/calculations/preview
func (h *CalculationHandler) Preview(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "geçersiz istek gövdesi")
		return
	}

	result, err := h.calcSvc.Preview(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			response.BadRequest(c, 13003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
