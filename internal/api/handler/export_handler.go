package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/internal/service"
	"github.com/barisbulutdemir/raporermak/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves file export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler builds the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportReport downloads one report as an .xlsx workbook.
// GET /api/v1/reports/:id/export
func (h *ExportHandler) ExportReport(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportReport(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrReportForbidden):
			response.Forbidden(c, 13002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportHolidaysICS downloads one year's holidays as an iCalendar file.
// GET /api/v1/holidays/export?year=2026
func (h *ExportHandler) ExportHolidaysICS(c *gin.Context) {
	year, _ := strconv.Atoi(c.DefaultQuery("year", "0"))

	buf, filename, err := h.exportSvc.ExportHolidaysICS(c.Request.Context(), year)
	if err != nil {
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
