package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barisbulutdemir/raporermak/config"
	"github.com/barisbulutdemir/raporermak/internal/api/handler"
	"github.com/barisbulutdemir/raporermak/internal/api/middleware"
	"github.com/barisbulutdemir/raporermak/internal/model"
	"github.com/barisbulutdemir/raporermak/pkg/jwt"
	"github.com/barisbulutdemir/raporermak/pkg/redis"
)

// loginRateLimit throttles credential guessing per IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute

	// signatures are base64 PNGs, so the body limit stays generous
	maxBodyBytes = 5 << 20
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.POST("/register", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.POST("/auth/password", h.Auth.ChangePassword)

			users := authorized.Group("/users")
			{
				users.GET("/me", h.User.GetProfile)
				users.PATCH("/me", h.User.UpdateProfile)
				users.GET("", middleware.RoleAuth(model.RoleAdmin), h.User.List)
				users.POST("/:id/approve", middleware.RoleAuth(model.RoleAdmin), h.User.Approve)
				users.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.User.Delete)
			}

			reports := authorized.Group("/reports")
			{
				reports.POST("", h.Report.Create)
				reports.GET("", h.Report.List)
				reports.GET("/:id", h.Report.Get)
				reports.PUT("/:id", h.Report.Update)
				reports.DELETE("/:id", h.Report.Delete)
				reports.GET("/:id/export", h.Export.ExportReport)
			}

			holidays := authorized.Group("/holidays")
			{
				holidays.GET("", h.Holiday.List)
				holidays.GET("/export", h.Export.ExportHolidaysICS)
				holidays.POST("", middleware.RoleAuth(model.RoleAdmin), h.Holiday.Create)
				holidays.POST("/seed", middleware.RoleAuth(model.RoleAdmin), h.Holiday.Seed)
				holidays.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Holiday.Update)
				holidays.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Holiday.Delete)
			}

			authorized.POST("/calculations/preview", h.Calculation.Preview)
			authorized.GET("/exchange-rates", h.Exchange.Rates)
		}
	}

	return r
}
