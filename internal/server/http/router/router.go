package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/passtrack/passboard/internal/config"
	"github.com/passtrack/passboard/internal/server/http/handlers"
	"github.com/passtrack/passboard/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, int(cfg.SessionTTL.Seconds()))
	ordersHandler := handlers.NewOrdersHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	chartsHandler := handlers.NewChartsHandler(facade)
	updatesHandler := handlers.NewUpdatesHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/orders", ordersHandler.List)
	protected.GET("/stats", statsHandler.Summary)
	protected.GET("/updates", updatesHandler.Poll)
	protected.GET("/users/usernames", chartsHandler.Usernames)
	protected.GET("/charts/appointments-by-office", chartsHandler.AppointmentsByOffice)
	protected.GET("/charts/orders-by-username", chartsHandler.OrdersByUsername)

	return engine
}
