package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dormhub/dormhub-api/internal/handler"
	"github.com/dormhub/dormhub-api/internal/middleware"
	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/service"
	"github.com/dormhub/dormhub-api/pkg/config"
	"github.com/dormhub/dormhub-api/pkg/logger"
	corsmiddleware "github.com/dormhub/dormhub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/dormhub/dormhub-api/pkg/middleware/requestid"
)

// Services bundles everything the router needs to register routes.
type Services struct {
	Auth       *service.AuthService
	Students   *service.StudentService
	Rooms      *service.RoomService
	Repairs    *service.RepairService
	Hygiene    *service.HygieneService
	Visitors   *service.VisitorService
	Dashboards *service.DashboardService
	Summaries  *service.SummaryService
	Exports    *service.ExportService
	Metrics    *service.MetricsService
}

// New assembles the gin engine with all middleware and routes.
func New(cfg *config.Config, logr *zap.Logger, svcs Services) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(svcs.Metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if svcs.Metrics != nil {
		r.GET("/metrics", gin.WrapH(svcs.Metrics.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := handler.NewAuthHandler(svcs.Auth)
	studentHandler := handler.NewStudentHandler(svcs.Students)
	roomHandler := handler.NewRoomHandler(svcs.Rooms)
	repairHandler := handler.NewRepairHandler(svcs.Repairs)
	hygieneHandler := handler.NewHygieneHandler(svcs.Hygiene)
	visitorHandler := handler.NewVisitorHandler(svcs.Visitors)
	dashboardHandler := handler.NewDashboardHandler(svcs.Dashboards)
	summaryHandler := handler.NewSummaryHandler(svcs.Summaries)
	exportHandler := handler.NewExportHandler(svcs.Exports)

	// Reference data never varies per caller, so repeated reads are served
	// from a small in-process cache.
	refCache := gocache.New(cfg.Server.ReferenceCacheTTL, 2*cfg.Server.ReferenceCacheTTL)
	caching := middleware.HTTPCache(refCache, cfg.Server.ReferenceCacheTTL)

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.RateLimit(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))
	api.Use(middleware.WithResponseMeta())

	api.GET("/auth/users", caching, authHandler.Roster)
	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(svcs.Auth))
	secured.Use(middleware.InvalidateDashboard(svcs.Dashboards))

	adminOnly := middleware.RequireRoles(models.RoleAdministrator)
	staffOnly := middleware.RequireRoles(models.RoleAdministrator, models.RoleDormManager)

	secured.GET("/dashboard", dashboardHandler.Stats)
	secured.POST("/summary", summaryHandler.Generate)

	secured.GET("/students", studentHandler.List)
	secured.GET("/students/unassigned", adminOnly, studentHandler.Unassigned)
	secured.POST("/students", adminOnly, studentHandler.Create)
	secured.PUT("/students/:id", adminOnly, studentHandler.Update)
	secured.DELETE("/students/:id", adminOnly, studentHandler.Delete)
	secured.POST("/students/assign", adminOnly, studentHandler.Assign)

	secured.GET("/buildings", caching, roomHandler.Buildings)
	secured.GET("/rooms", staffOnly, roomHandler.List)
	secured.GET("/rooms/available", adminOnly, roomHandler.Available)

	secured.GET("/repairs", repairHandler.List)
	secured.POST("/repairs", repairHandler.Create)
	secured.PATCH("/repairs/:id/status", staffOnly, repairHandler.UpdateStatus)

	secured.GET("/hygiene", hygieneHandler.List)
	secured.POST("/hygiene", staffOnly, hygieneHandler.Create)

	secured.GET("/visitors", visitorHandler.List)
	secured.POST("/visitors", visitorHandler.Register)
	secured.POST("/visitors/:id/checkout", staffOnly, visitorHandler.CheckOut)

	secured.GET("/exports/students", adminOnly, exportHandler.Students)
	secured.GET("/exports/hygiene", adminOnly, exportHandler.Hygiene)
	secured.GET("/exports/repairs", adminOnly, exportHandler.Repairs)

	return r
}
