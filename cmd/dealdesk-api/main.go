package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/dealdesk/dealdesk-api/api/swagger"
	"github.com/dealdesk/dealdesk-api/internal/handler"
	"github.com/dealdesk/dealdesk-api/internal/middleware"
	"github.com/dealdesk/dealdesk-api/internal/repository"
	"github.com/dealdesk/dealdesk-api/internal/service"
	"github.com/dealdesk/dealdesk-api/pkg/cache"
	"github.com/dealdesk/dealdesk-api/pkg/config"
	"github.com/dealdesk/dealdesk-api/pkg/database"
	"github.com/dealdesk/dealdesk-api/pkg/logger"
	corsmiddleware "github.com/dealdesk/dealdesk-api/pkg/middleware/cors"
	reqidmiddleware "github.com/dealdesk/dealdesk-api/pkg/middleware/requestid"
)

// @title DealDesk API
// @version 1.0.0
// @description Deal pipeline tracker: configurable columns, saved filter views and dashboard metrics
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.DefaultTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	dealRepo := repository.NewDealRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	viewRepo := repository.NewViewRepository(db)

	columnSvc := service.NewColumnService(columnRepo, validator.New(), logr)
	dealSvc := service.NewDealService(dealRepo, columnSvc, cacheSvc, logr)
	viewSvc := service.NewViewService(viewRepo, logr)
	dashboardSvc := service.NewDashboardService(dealRepo, cacheSvc, cfg.Dashboard.CacheTTL, cfg.Dashboard.UpcomingLimit, logr)

	dealHandler := handler.NewDealHandler(dealSvc)
	columnHandler := handler.NewColumnHandler(columnSvc, dealSvc)
	viewHandler := handler.NewViewHandler(viewSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		deals := api.Group("/deals")
		{
			deals.GET("", dealHandler.List)
			deals.POST("", dealHandler.Create)
			deals.GET("/values/:key", dealHandler.UniqueValues)
			deals.GET("/:id", dealHandler.Get)
			deals.PUT("/:id", dealHandler.Update)
			deals.DELETE("/:id", dealHandler.Delete)
		}

		tables := api.Group("/tables/:table")
		{
			tables.GET("/columns", columnHandler.List)
			tables.POST("/columns", columnHandler.Create)
			tables.PUT("/columns", columnHandler.Replace)
			tables.PUT("/columns/:id", columnHandler.Update)
			tables.DELETE("/columns/:id", columnHandler.Delete)
			tables.POST("/columns/:id/move", columnHandler.Move)
			tables.POST("/columns/:id/visibility", columnHandler.ToggleVisibility)
			tables.GET("/rows", columnHandler.Rows)
		}

		views := api.Group("/views")
		{
			views.GET("", viewHandler.List)
			views.POST("", viewHandler.Save)
			views.POST("/:id/select", viewHandler.Select)
			views.DELETE("/:id", viewHandler.Delete)
		}

		if cfg.Dashboard.Enabled {
			api.GET("/dashboard/summary", dashboardHandler.Summary)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
