package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	_ "github.com/dormhub/dormhub-api/api/swagger"
	"github.com/dormhub/dormhub-api/internal/repository"
	"github.com/dormhub/dormhub-api/internal/router"
	"github.com/dormhub/dormhub-api/internal/service"
	"github.com/dormhub/dormhub-api/internal/store"
	"github.com/dormhub/dormhub-api/pkg/cache"
	"github.com/dormhub/dormhub-api/pkg/config"
	"github.com/dormhub/dormhub-api/pkg/logger"
)

// @title DormHub API
// @version 1.0.0
// @description Role-scoped dormitory management dashboard backend
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

	db := store.New(store.Seed(time.Now()))

	users := repository.NewUserRepository(db)
	buildings := repository.NewBuildingRepository(db)
	rooms := repository.NewRoomRepository(db)
	students := repository.NewStudentRepository(db)
	repairs := repository.NewRepairRepository(db)
	hygiene := repository.NewHygieneRepository(db)
	visitors := repository.NewVisitorRepository(db)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	cacheEnabled := cfg.Dashboard.CacheEnabled
	if cacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
			cacheEnabled = false
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cacheEnabled)

	authSvc := service.NewAuthService(users, validate, logr, service.AuthConfig{
		TokenSecret: cfg.Auth.TokenSecret,
		TokenExpiry: cfg.Auth.TokenExpiry,
		Issuer:      cfg.Auth.Issuer,
	})
	studentSvc := service.NewStudentService(students, validate, logr)
	roomSvc := service.NewRoomService(rooms, buildings, logr)
	repairSvc := service.NewRepairService(repairs, students, validate, logr)
	hygieneSvc := service.NewHygieneService(hygiene, students, validate, logr)
	visitorSvc := service.NewVisitorService(visitors, students, validate, logr)
	dashboardSvc := service.NewDashboardService(studentSvc, repairSvc, visitorSvc, rooms, buildings, students, cacheSvc, logr)
	summarySvc := service.NewSummaryService(repairSvc, hygieneSvc, visitorSvc, metricsSvc, logr, service.SummaryConfig{
		APIKey:  cfg.Summary.APIKey,
		Model:   cfg.Summary.Model,
		BaseURL: cfg.Summary.BaseURL,
		Timeout: cfg.Summary.Timeout,
	})
	exportSvc := service.NewExportService(students, rooms, buildings, hygiene, repairs)

	r := router.New(cfg, logr, router.Services{
		Auth:       authSvc,
		Students:   studentSvc,
		Rooms:      roomSvc,
		Repairs:    repairSvc,
		Hygiene:    hygieneSvc,
		Visitors:   visitorSvc,
		Dashboards: dashboardSvc,
		Summaries:  summarySvc,
		Exports:    exportSvc,
		Metrics:    metricsSvc,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
