package handler

import "github.com/barisbulutdemir/raporermak/internal/service"

// Handler aggregates the per-module HTTP handlers.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Report      *ReportHandler
	Holiday     *HolidayHandler
	Calculation *CalculationHandler
	Exchange    *ExchangeHandler
	Export      *ExportHandler
}

// NewHandler wires the handler layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Report:      NewReportHandler(svc.Report),
		Holiday:     NewHolidayHandler(svc.Holiday),
		Calculation: NewCalculationHandler(svc.Calculation),
		Exchange:    NewExchangeHandler(svc.Exchange),
		Export:      NewExportHandler(svc.Export),
	}
}
