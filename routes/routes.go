package routes

import (
	"time"

	"github.com/Sofzenix/neurowell/config"
	"github.com/Sofzenix/neurowell/controllers"
	"github.com/Sofzenix/neurowell/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client,
	classifier *services.EmotionClassifier, conf config.Config) {
	scorer := services.NewMoodScorer(services.DefaultScorePolicy())
	events := services.NewEventStore(db)
	moods := services.NewDailyMoodStore(db, scorer)
	recorder := services.NewRecorder(db, events, moods)
	projector := services.NewChartProjector(db)
	profiles := services.NewProfileService(db)
	reports := services.NewReportService(db, moods, projector, profiles)
	detector := services.NewDetector()
	cache := services.NewDashboardCache(redisClient, time.Duration(conf.DashboardCacheTTL)*time.Second)

	dashboardController := controllers.NewDashboardController(profiles, moods, projector, cache)
	chartController := controllers.NewChartController(projector)
	analyzerController := controllers.NewAnalyzerController(recorder, moods, detector, classifier, cache)
	reportController := controllers.NewReportController(reports)
	statsController := controllers.NewStatsController(events)
	metaController := controllers.MetaController{}

	// 分析接口组
	analytics := r.Group("/api/analytics")
	{
		analytics.GET("/dashboard", dashboardController.GetDashboard)
		analytics.GET("/profile", dashboardController.GetProfile)

		analytics.GET("/charts/radar", chartController.GetRadarChart)
		analytics.GET("/charts/bar", chartController.GetBarChart)
		analytics.GET("/charts/pie", chartController.GetPieChart)
		analytics.GET("/progress", chartController.GetProgress)

		analytics.POST("/analyzer/log", analyzerController.LogEmotion)
		analytics.POST("/analyzer/detect", analyzerController.DetectEmotion)
		analytics.POST("/update-mood", analyzerController.UpdateMood)

		analytics.POST("/report/generate", reportController.GenerateReport)
		analytics.GET("/report/list", reportController.ListReports)

		analytics.GET("/stats", statsController.GetStats)

		analytics.GET("/health", metaController.HealthCheck)
		analytics.GET("/info", metaController.ServiceInfo)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
