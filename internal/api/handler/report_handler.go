package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/service"
	pkgerrors "github.com/barisbulutdemir/raporermak/pkg/errors"
	"github.com/barisbulutdemir/raporermak/pkg/response"
)

// ReportHandler serves the service report CRUD endpoints.
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler builds the ReportHandler.
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Create saves a new report for the caller.
// POST /api/v1/reports
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "geçersiz istek gövdesi")
		return
	}

	report, err := h.reportSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, report)
}

// Get returns one report with its recomputed day classification.
// GET /api/v1/reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	report, err := h.reportSvc.Get(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, report)
}

// List returns the caller's reports, paginated.
// GET /api/v1/reports?page=1&page_size=20
func (h *ReportHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	reports, total, err := h.reportSvc.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, reports, total, page, pageSize)
}

// Update replaces a report's content.
// PUT /api/v1/reports/:id
func (h *ReportHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "geçersiz istek gövdesi")
		return
	}

	report, err := h.reportSvc.Update(c.Request.Context(), c.Param("id"), userID, role, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, report)
}

// Delete soft-deletes a report.
// DELETE /api/v1/reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.reportSvc.Delete(c.Request.Context(), c.Param("id"), userID, role); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ReportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReportNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrReportForbidden):
		response.Forbidden(c, 13002, err.Error())
	case errors.Is(err, service.ErrInvalidDateRange):
		response.BadRequest(c, 13003, err.Error())
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 10006, err.Error())
	default:
		response.InternalError(c)
	}
}
