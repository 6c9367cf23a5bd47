package service

import (
	"go.uber.org/zap"

	"github.com/barisbulutdemir/raporermak/config"
	"github.com/barisbulutdemir/raporermak/internal/repository"
	"github.com/barisbulutdemir/raporermak/pkg/jwt"
	"github.com/barisbulutdemir/raporermak/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth        AuthService
	User        UserService
	Report      ReportService
	Holiday     HolidayService
	Calculation CalculationService
	Exchange    ExchangeService
	Export      ExportService
}

// NewService wires the service layer. rdb may be nil; Redis-backed
// features (logout blacklist, rate cache) degrade gracefully.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	holidaySvc := NewHolidayService(repo, logger)
	reportSvc := NewReportService(repo, holidaySvc, logger)

	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		Report:      reportSvc,
		Holiday:     holidaySvc,
		Calculation: NewCalculationService(repo, holidaySvc, logger),
		Exchange:    NewExchangeService(&cfg.Exchange, rdb, logger),
		Export:      NewExportService(repo, holidaySvc, logger),
	}
}
