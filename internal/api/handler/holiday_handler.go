package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/service"
	"github.com/barisbulutdemir/raporermak/pkg/response"
)

// HolidayHandler serves the official holiday calendar endpoints.
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler builds the HolidayHandler.
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// List returns the holidays of one year.
// GET /api/v1/holidays?year=2026
func (h *HolidayHandler) List(c *gin.Context) {
	year, _ := strconv.Atoi(c.DefaultQuery("year", "0"))

	holidays, err := h.holidaySvc.List(c.Request.Context(), year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, holidays)
}

// Create adds a holiday. Admin only.
// POST /api/v1/holidays
func (h *HolidayHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "geçersiz istek gövdesi")
		return
	}

	holiday, err := h.holidaySvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrHolidayExists) {
			response.Conflict(c, 14002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, holiday)
}

// Update edits a holiday. Admin only.
// PUT /api/v1/holidays/:id
func (h *HolidayHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "geçersiz istek gövdesi")
		return
	}

	holiday, err := h.holidaySvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrHolidayNotFound) {
			response.NotFound(c, 14001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, holiday)
}

// Delete removes a holiday. Admin only.
// DELETE /api/v1/holidays/:id
func (h *HolidayHandler) Delete(c *gin.Context) {
	if err := h.holidaySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrHolidayNotFound) {
			response.NotFound(c, 14001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Seed upserts the built-in holiday tables. Admin only.
// POST /api/v1/holidays/seed
func (h *HolidayHandler) Seed(c *gin.Context) {
	count, err := h.holidaySvc.Seed(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.SeedResponse{Seeded: count})
}
