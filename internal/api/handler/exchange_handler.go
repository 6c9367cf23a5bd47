package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/internal/calc"
	"github.com/barisbulutdemir/raporermak/internal/service"
	"github.com/barisbulutdemir/raporermak/pkg/response"
)

// ExchangeHandler serves the TCMB exchange rate endpoint.
type ExchangeHandler struct {
	exchangeSvc service.ExchangeService
}

// NewExchangeHandler builds the ExchangeHandler.
func NewExchangeHandler(exchangeSvc service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeSvc: exchangeSvc}
}

// Rates returns USD and EUR selling rates for a date (default today).
// GET /api/v1/exchange-rates?date=2026-05-25
func (h *ExchangeHandler) Rates(c *gin.Context) {
	day := service.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := calc.ParseDate(raw)
		if err != nil {
			response.BadRequest(c, 10001, "geçersiz tarih biçimi")
			return
		}
		day = parsed
	}

	rates, err := h.exchangeSvc.Rates(c.Request.Context(), day)
	if err != nil {
		if errors.Is(err, service.ErrRatesUnavailable) {
			response.Error(c, http.StatusBadGateway, 15001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, rates)
}
