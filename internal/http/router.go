package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"mysched/internal/http/handlers"
	"mysched/internal/http/middleware"
)

type RouterDependencies struct {
	Logger            *slog.Logger
	HealthHandler     *handlers.HealthHandler
	ScheduleHandler   *handlers.ScheduleHandler
	PromotionsHandler *handlers.PromotionsHandler
	StaticDir         string
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/healthz", deps.HealthHandler.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/schedule", deps.ScheduleHandler.GetSchedule)
		api.POST("/schedule/refresh", deps.ScheduleHandler.Refresh)
		api.GET("/schedule/:week", deps.ScheduleHandler.GetWeek)
		api.GET("/schedule/:week/export.csv", deps.ScheduleHandler.ExportWeekCSV)
		api.GET("/promotions", deps.PromotionsHandler.ListPromotions)
	}

	// Everything else is the installable front end, served off disk.
	r.NoRoute(StaticFileServer(deps.StaticDir, deps.Logger))

	return r
}
